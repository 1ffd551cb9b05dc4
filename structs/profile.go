package structs

// Child ages are clamped to 0..18 by the profile store.
type Child struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type UserProfile struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Location string  `json:"location"`
	Phone    string  `json:"phone"`
	Children []Child `json:"children"`
}
