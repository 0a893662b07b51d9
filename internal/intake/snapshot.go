// internal/intake/snapshot.go
package intake

import (
	"encoding/json"
	"fmt"
)

type snapshot struct {
	Variant    string      `json:"variant"`
	Welcome    *Welcome    `json:"welcome,omitempty"`
	Collecting *Collecting `json:"collecting,omitempty"`
	Results    *Results    `json:"results,omitempty"`
	KitView    *KitView    `json:"kitView,omitempty"`
}

// MarshalState encodes a state with its variant tag.
func MarshalState(state State) ([]byte, error) {
	snap := snapshot{Variant: state.variant()}
	switch s := state.(type) {
	case Welcome:
		snap.Welcome = &s
	case Collecting:
		snap.Collecting = &s
	case Results:
		snap.Results = &s
	case KitView:
		snap.KitView = &s
	default:
		return nil, fmt.Errorf("unknown wizard state %T", state)
	}
	return json.Marshal(snap)
}

// UnmarshalState decodes the output of MarshalState.
func UnmarshalState(data []byte) (State, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode wizard state: %w", err)
	}

	switch {
	case snap.Variant == "welcome" && snap.Welcome != nil:
		return *snap.Welcome, nil
	case snap.Variant == "collecting" && snap.Collecting != nil:
		if snap.Collecting.SubStep < 0 || snap.Collecting.SubStep > LastSubStep {
			return nil, fmt.Errorf("wizard sub-step %d out of range", snap.Collecting.SubStep)
		}
		return *snap.Collecting, nil
	case snap.Variant == "results" && snap.Results != nil:
		return *snap.Results, nil
	case snap.Variant == "kit" && snap.KitView != nil:
		return *snap.KitView, nil
	}
	return nil, fmt.Errorf("unknown wizard state variant %q", snap.Variant)
}
