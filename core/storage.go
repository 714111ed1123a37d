package core

// UpdateOptions are applied by repositories to partial updates.
type UpdateOptions struct {
	// Upsert creates the document when no document matches the identifier.
	Upsert bool
}

// UpdateResult reports what a partial update did to the store.
type UpdateResult struct {
	Matched    int64  `json:"matchedCount"`
	Modified   int64  `json:"modifiedCount"`
	Upserted   int64  `json:"upsertedCount"`
	UpsertedID string `json:"upsertedId,omitempty"`
}

