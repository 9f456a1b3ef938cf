package models

// Reference tables joined into complaint listings.

type Category struct {
	ID   string `firestore:"id" json:"id"`
	Name string `firestore:"name" json:"name"`
}

type Customer struct {
	ID       string `firestore:"id" json:"id"`
	FullName string `firestore:"fullName" json:"fullName"`
	Email    string `firestore:"email" json:"email"`
	Address  string `firestore:"address,omitempty" json:"address,omitempty"`
}

type Employee struct {
	ID         string `firestore:"id" json:"id"`
	FullName   string `firestore:"fullName" json:"fullName"`
	Email      string `firestore:"email" json:"email"`
	CategoryID string `firestore:"categoryId,omitempty" json:"categoryId,omitempty"`
}
