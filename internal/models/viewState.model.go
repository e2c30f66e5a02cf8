package models

const (
	ViewList  = "list"
	ViewCards = "cards"
)

// ViewState is the small slice of UI state that survives navigation: which
// list rendering is active and which page the user was on.
type ViewState struct {
	View      string `json:"view"`
	PageIndex int    `json:"pageIndex"`
}

func DefaultViewState() ViewState {
	return ViewState{View: ViewList, PageIndex: 1}
}

func (v ViewState) Normalized() ViewState {
	if v.View != ViewList && v.View != ViewCards {
		v.View = ViewList
	}
	if v.PageIndex < 1 {
		v.PageIndex = 1
	}
	return v
}
