package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default false) and explicit values.
type GenerateRequest struct {
	Length  int   `json:"length"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password     string `json:"password"`
	Length       int    `json:"length"`
	AlphabetSize int    `json:"alphabet_size"`
}

// AlphabetResponse describes the characters a configuration draws from.
type AlphabetResponse struct {
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}
