package storage

import (
	"encoding/json"

	. "directory/internal/models"
)

func encodeViewState(state ViewState) ([]byte, error) {
	return json.Marshal(state)
}

func decodeViewState(raw []byte) (ViewState, error) {
	var state ViewState
	if err := json.Unmarshal(raw, &state); err != nil {
		return ViewState{}, err
	}
	return state, nil
}
