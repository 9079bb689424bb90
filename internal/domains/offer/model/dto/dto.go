package dto

// WelcomeOfferResponse is the first-visit popup payload. Seen reflects the
// visitor's dismissal flag; the client shows the popup after PopupDelaySec
// only when Seen is false.
type WelcomeOfferResponse struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Code          string `json:"code"`
	MinOrder      int    `json:"min_order"`
	PopupDelaySec int    `json:"popup_delay_sec"`
	Seen          bool   `json:"seen"`
}

// DismissOfferResponse acknowledges that the flag is set.
type DismissOfferResponse struct {
	Seen bool `json:"seen"`
}
