package types

// ------------------------------
// Response Types
// ------------------------------

// UploadResponse is the storage service's reply to a raw-bytes object POST.
// The key is echoed with the bucket prefix included, e.g.
// "food-images/5a1f….jpg".
type UploadResponse struct {
	Key string `json:"Key"`
}
