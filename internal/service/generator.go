package service

import (
	"errors"
	"fmt"

	"github.com/strongpass/strongpass-go/internal/generator"
	"github.com/strongpass/strongpass-go/internal/model"
	"github.com/strongpass/strongpass-go/internal/strength"
	"github.com/strongpass/strongpass-go/internal/wordlist"
)

const (
	// DefaultLength applies when a request leaves length unset.
	DefaultLength = 12
	// MaxLength caps requests on the HTTP surface. The core generator is
	// uncapped; this guards the public endpoint against absurd allocations.
	MaxLength = 256
)

var (
	ErrLengthTooLong = errors.New("password length must be at most 256")
	ErrEmptyPassword = errors.New("password must not be empty")
)

// GeneratorService handles password generation and analysis business logic.
type GeneratorService struct {
	gen *generator.Generator
}

// NewGeneratorService creates a GeneratorService over the given word list.
func NewGeneratorService(words *wordlist.List) *GeneratorService {
	return &GeneratorService{gen: generator.New(words)}
}

// Generate produces a password based on the given request. A zero length
// takes DefaultLength; anything else is passed through to the generator and
// rejected there if invalid.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	strategy, err := generator.ParseStrategy(req.Strategy)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	if length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	cfg := generator.Config{Length: length, Strategy: strategy}
	password, err := s.gen.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	bits, err := s.gen.Entropy(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Password:    password,
		Strategy:    string(strategy),
		Length:      length,
		EntropyBits: bits,
	}

	if strategy == generator.StrategyRandom && length < generator.MinCoverageLength {
		resp.Warning = fmt.Sprintf(
			"length %d cannot guarantee all four character classes; use %d or more",
			length, generator.MinCoverageLength,
		)
	}

	if req.Analyze {
		report := strength.Analyze(password)
		resp.Strength = &report
	}

	return resp, nil
}

// Analyze scores an arbitrary password without generating anything.
func (s *GeneratorService) Analyze(req model.AnalyzeRequest) (model.StrengthReport, error) {
	if req.Password == "" {
		return model.StrengthReport{}, ErrEmptyPassword
	}
	return strength.Analyze(req.Password), nil
}
