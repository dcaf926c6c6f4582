package subscriptions

import "github.com/google/uuid"

// EmptyChoiceLabel is the label shown for the "no plan selected" option.
const EmptyChoiceLabel = "------"

// Choice is one selectable option for the auto-applied licenses plan.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoiceList is the selectable-options list for designating which plan is
// used for auto-applied licenses under a customer agreement. Choices always
// start with the empty option; Selected is the pre-selected value ("" for
// the empty option).
type ChoiceList struct {
	Choices  []Choice `json:"choices"`
	Selected string   `json:"selected"`
}

// Contains reports whether the given value is one of the selectable choices.
func (l ChoiceList) Contains(value string) bool {
	for _, c := range l.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// BuildAutoApplyChoices maps the currently valid plans for an agreement to a
// selectable-options list: one empty option followed by one (uuid, title)
// pair per plan. The agreement's current auto-applied plan is pre-selected
// when it is among the plans; otherwise the empty option is.
//
// This is the pure presentation half of choice derivation; fetching the
// plans (active, date range containing now) is the repository's job.
func BuildAutoApplyChoices(plans []*SubscriptionPlan, currentPlanID *uint) ChoiceList {
	choices := make([]Choice, 0, len(plans)+1)
	choices = append(choices, Choice{Value: "", Label: EmptyChoiceLabel})

	selected := ""
	for _, plan := range plans {
		choices = append(choices, Choice{
			Value: plan.UUID().String(),
			Label: plan.Title(),
		})
		if currentPlanID != nil && plan.ID() == *currentPlanID {
			selected = plan.UUID().String()
		}
	}

	return ChoiceList{Choices: choices, Selected: selected}
}

// PlanUUIDForChoice resolves a submitted choice value back to a plan UUID.
// The empty value resolves to nil (clear the designation).
func PlanUUIDForChoice(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
