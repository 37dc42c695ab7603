package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal, err := svc.CreateGoal("House Deposit", decimal.NewFromInt(50000))
		testutil.AssertNoError(t, err)

		if goal.ID == 0 {
			t.Fatal("expected non-zero goal ID")
		}
		if goal.Name != "House Deposit" {
			t.Errorf("expected name House Deposit, got %s", goal.Name)
		}
		if !goal.TargetAmount.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected target 50000, got %s", goal.TargetAmount)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.CreateGoal("", decimal.NewFromInt(50000))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.CreateGoal("House Deposit", decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListGoals(t *testing.T) {
	t.Run("returns_all", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		testutil.CreateTestGoal(t, db)
		testutil.CreateTestGoal(t, db)

		result, err := svc.ListGoals(pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 goals, got %d", result.TotalItems)
		}
	})
}

func TestGetGoalByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.GetGoalByID(99999)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		created := testutil.CreateTestGoal(t, db)

		updated, err := svc.UpdateGoal(created.ID, "Emergency Fund", decimal.NewFromInt(25000))
		testutil.AssertNoError(t, err)

		if updated.Name != "Emergency Fund" {
			t.Errorf("expected name Emergency Fund, got %s", updated.Name)
		}
		if !updated.TargetAmount.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("expected target 25000, got %s", updated.TargetAmount)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.UpdateGoal(99999, "Emergency Fund", decimal.NewFromInt(25000))
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Run("no_references_deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		created := testutil.CreateTestGoal(t, db)

		testutil.AssertNoError(t, svc.DeleteGoal(created.ID))

		_, err := svc.GetGoalByID(created.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		err := svc.DeleteGoal(99999)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("referenced_always_blocked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		instrument := testutil.CreateTestInstrument(t, db)
		goal := testutil.CreateTestGoal(t, db)
		testutil.CreateTestTrade(t, db, instrument.ID, &goal.ID)

		err := svc.DeleteGoal(goal.ID)
		testutil.AssertAppError(t, err, "GOAL_HAS_TRADES")

		// Goal and its references remain intact
		_, err = svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		var tradeCount int64
		testutil.AssertNoError(t, db.Model(&models.TradeLog{}).Where("goal_id = ?", goal.ID).Count(&tradeCount).Error)
		if tradeCount != 1 {
			t.Errorf("expected 1 referencing trade, got %d", tradeCount)
		}
	})
}
