package types

// ------------------------------
// Request Types
// ------------------------------

// DeviceFeedParams is the body for the get_device_feed procedure. The
// procedure has two arities: SearchQuery must be omitted entirely (not sent
// as null) when no search is active, hence the pointer with omitempty.
type DeviceFeedParams struct {
	TargetDeviceID string  `json:"target_device_id"`
	SearchQuery    *string `json:"search_query,omitempty"`
}
