package service

import (
	"sync"

	"github.com/passwiz/passwiz-go/internal/controller"
	"github.com/passwiz/passwiz-go/internal/generator"
	"github.com/passwiz/passwiz-go/internal/model"
)

// GeneratorService handles password generation for API requests.
type GeneratorService struct {
	mu  sync.Mutex
	src generator.Source
}

// NewGeneratorService creates a new GeneratorService drawing from src.
// A nil src uses the crypto/rand source.
func NewGeneratorService(src generator.Source) *GeneratorService {
	if src == nil {
		src = generator.NewSecureSource()
	}
	return &GeneratorService{src: src}
}

// Generate produces a password based on the given request. The length is
// clamped to the slider range, and a missing length uses the default.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = controller.DefaultLength
	}
	length = controller.ClampLength(length)

	alphabet := generator.BuildAlphabet(boolOrDefault(req.Numbers, false), boolOrDefault(req.Symbols, false))

	// Sources such as math/rand are not safe for concurrent requests.
	s.mu.Lock()
	password, err := generator.Generate(length, alphabet, s.src)
	s.mu.Unlock()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:     password,
		Length:       len(password),
		AlphabetSize: len(alphabet),
	}, nil
}

// Alphabet describes the characters a request with the given flags draws from.
func (s *GeneratorService) Alphabet(numbers, symbols bool) model.AlphabetResponse {
	alphabet := generator.BuildAlphabet(numbers, symbols)
	return model.AlphabetResponse{
		Alphabet: alphabet,
		Size:     len(alphabet),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
