package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/passwiz/passwiz-go/internal/generator"
	"github.com/passwiz/passwiz-go/internal/model"
	"github.com/passwiz/passwiz-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the default configuration.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := decodeSingle(r.Body, &req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if errors.Is(err, generator.ErrInvalidArgument) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAlphabet handles GET /api/v1/alphabet?numbers=&symbols= requests.
func (h *GeneratorHandler) HandleAlphabet(w http.ResponseWriter, r *http.Request) {
	numbers, err := queryBool(r, "numbers")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid numbers parameter"))
		return
	}
	symbols, err := queryBool(r, "symbols")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid symbols parameter"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Alphabet(numbers, symbols))
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeSingle decodes at most one JSON value from r. An empty body leaves v
// untouched; anything after the first value is an error.
func decodeSingle(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errTrailingData
	}
	return nil
}

// queryBool parses an optional boolean query parameter; missing means false.
func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
