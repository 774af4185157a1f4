package models

// ContactSubmission holds the structure for a single entry in the
// contactSubmissions collection. Write-once; no workflow reads it back.
type ContactSubmission struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	Subject     string `json:"subject" bson:"subject"`
	Message     string `json:"message" bson:"message"`
	SubmittedAt string `json:"submittedAt" bson:"submittedAt"`
}
