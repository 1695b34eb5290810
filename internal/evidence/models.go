package evidence

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection is the MongoDB collection holding evidence documents.
const Collection = "evidence"

// Evidence is one proof artifact linked to exactly one case. CaseID stores
// the parent case's public id as a plain string, which is also how evidence
// listings filter it.
type Evidence struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID      string             `bson:"case_id" json:"case_id"`
	Type        string             `bson:"type" json:"type"`
	URL         *string            `bson:"url,omitempty" json:"url,omitempty"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
}

// CreateEvidenceRequest is the payload for attaching evidence to a case.
// Type is an open string (screenshot, link, payment_proof, chat_log, other
// by convention) and is stored as-is.
type CreateEvidenceRequest struct {
	CaseID      string  `json:"case_id" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}
