package subscriptions

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChoicePlan(t *testing.T, id uint, title string) *SubscriptionPlan {
	t.Helper()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	plan, err := NewSubscriptionPlan(title, 1, 10, now, now.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.NoError(t, plan.SetID(id))
	return plan
}

func TestBuildAutoApplyChoices_Empty(t *testing.T) {
	list := BuildAutoApplyChoices(nil, nil)

	require.Len(t, list.Choices, 1)
	assert.Equal(t, "", list.Choices[0].Value)
	assert.Equal(t, EmptyChoiceLabel, list.Choices[0].Label)
	assert.Equal(t, "", list.Selected)
}

func TestBuildAutoApplyChoices_PlansAfterEmptyOption(t *testing.T) {
	a := newChoicePlan(t, 1, "Plan A")
	b := newChoicePlan(t, 2, "Plan B")

	list := BuildAutoApplyChoices([]*SubscriptionPlan{a, b}, nil)

	require.Len(t, list.Choices, 3)
	assert.Equal(t, EmptyChoiceLabel, list.Choices[0].Label)
	assert.Equal(t, a.UUID().String(), list.Choices[1].Value)
	assert.Equal(t, "Plan A", list.Choices[1].Label)
	assert.Equal(t, b.UUID().String(), list.Choices[2].Value)
	assert.Equal(t, "Plan B", list.Choices[2].Label)
	assert.Equal(t, "", list.Selected)
}

func TestBuildAutoApplyChoices_SelectsCurrentPlan(t *testing.T) {
	a := newChoicePlan(t, 1, "Plan A")
	b := newChoicePlan(t, 2, "Plan B")
	currentID := b.ID()

	list := BuildAutoApplyChoices([]*SubscriptionPlan{a, b}, &currentID)

	assert.Equal(t, b.UUID().String(), list.Selected)
}

func TestBuildAutoApplyChoices_CurrentPlanNotInList(t *testing.T) {
	a := newChoicePlan(t, 1, "Plan A")
	staleID := uint(99)

	list := BuildAutoApplyChoices([]*SubscriptionPlan{a}, &staleID)

	assert.Equal(t, "", list.Selected)
}

func TestChoiceList_Contains(t *testing.T) {
	a := newChoicePlan(t, 1, "Plan A")
	list := BuildAutoApplyChoices([]*SubscriptionPlan{a}, nil)

	assert.True(t, list.Contains(""))
	assert.True(t, list.Contains(a.UUID().String()))
	assert.False(t, list.Contains(uuid.NewString()))
}

func TestPlanUUIDForChoice(t *testing.T) {
	id, err := PlanUUIDForChoice("")
	require.NoError(t, err)
	assert.Nil(t, id)

	want := uuid.New()
	id, err = PlanUUIDForChoice(want.String())
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, want, *id)

	_, err = PlanUUIDForChoice("not-a-uuid")
	assert.Error(t, err)
}
