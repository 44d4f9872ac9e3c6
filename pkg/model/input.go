package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrNoSemesters       = errors.New("input holds no semesters")
	ErrInvalidSemester   = errors.New("invalid semester")
)

// Credits holds the weekly session counts encoded as "theory[:tutorial:practical]". Only Theory drives placement.
type Credits struct {
	Theory    uint64
	Tutorial  uint64
	Practical uint64
}

// ParseCredits never fails: missing or malformed components degrade to zero sessions.
// Components must be whole non-negative numbers, so a fractional "2.5" counts as zero rather than being rounded up.
func ParseCredits(credits string) Credits {
	components := lo.Map(strings.Split(credits, ":"), func(component string, _ int) uint64 {
		value, err := strconv.ParseUint(strings.TrimSpace(component), 10, 64)
		if err != nil {
			return 0
		}
		return value
	})

	var parsed Credits
	if len(components) > 0 {
		parsed.Theory = components[0]
	}
	if len(components) > 1 {
		parsed.Tutorial = components[1]
	}
	if len(components) > 2 {
		parsed.Practical = components[2]
	}
	return parsed
}

func (credits Credits) String() string {
	return fmt.Sprintf("%d:%d:%d", credits.Theory, credits.Tutorial, credits.Practical)
}

type Subject struct {
	Name    string `mapstructure:"name" json:"name" validate:"required"`
	Teacher string `mapstructure:"teacher" json:"teacher"`
	Credits string `mapstructure:"credits" json:"credits"`
}

func (subject Subject) ParsedCredits() Credits {
	return ParseCredits(subject.Credits)
}

// Sessions returns the number of placement attempts requested by the subject
func (subject Subject) Sessions() uint64 {
	return subject.ParsedCredits().Theory
}

func (subject Subject) Occupant() string {
	return fmt.Sprintf("%v (Theory) - %v", subject.Name, subject.Teacher)
}

// Semester carries display metadata next to the subjects; only Subjects is consumed by the timetabler
type Semester struct {
	Semester     string    `mapstructure:"semester" json:"semester"`
	TermStart    string    `mapstructure:"termStart" json:"termStart"`
	TermEnd      string    `mapstructure:"termEnd" json:"termEnd"`
	RoomNumber   string    `mapstructure:"roomNumber" json:"roomNumber"`
	NumStudents  string    `mapstructure:"numStudents" json:"numStudents"`
	FileLocation string    `mapstructure:"fileLocation" json:"fileLocation,omitempty"`
	ExcelName    string    `mapstructure:"excelName" json:"excelName,omitempty"`
	Subjects     []Subject `mapstructure:"subjects" json:"subjects" validate:"dive"`
}

type rawInput struct {
	Semesters []map[string]any `mapstructure:"semesters"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func SemestersFromFile(file string) ([]Semester, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, filepath.Ext(file))
	}

	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}

	var document any
	if err := unmarshal(bytes, &document); err != nil {
		return nil, fmt.Errorf("cannot parse input file %v: %w", file, err)
	}

	return DecodeSemesters(document)
}

// DecodeSemesters accepts a single semester object, a list of semesters or an object holding a "semesters" list
func DecodeSemesters(document any) ([]Semester, error) {
	var rawSemesters []any
	switch typed := document.(type) {
	case []any:
		rawSemesters = typed
	case map[string]any:
		if _, ok := typed["semesters"]; ok {
			var input rawInput
			if err := decode(typed, &input); err != nil {
				return nil, err
			}
			rawSemesters = lo.Map(input.Semesters, func(semester map[string]any, _ int) any { return semester })
		} else {
			rawSemesters = []any{typed}
		}
	default:
		return nil, fmt.Errorf("%w: unexpected document of type %T", ErrUnsupportedFormat, document)
	}

	if len(rawSemesters) == 0 {
		return nil, ErrNoSemesters
	}

	semesters := make([]Semester, 0, len(rawSemesters))
	for i, rawSemester := range rawSemesters {
		var semester Semester
		if err := decode(rawSemester, &semester); err != nil {
			return nil, fmt.Errorf("semester %d: %w", i, err)
		}
		if err := ValidateSemester(semester); err != nil {
			return nil, fmt.Errorf("semester %d: %w", i, err)
		}
		semesters = append(semesters, semester)
	}
	return semesters, nil
}

func ValidateSemester(semester Semester) error {
	if err := validate.Struct(semester); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := lo.Map(validationErrors, func(fieldError validator.FieldError, _ int) string {
				return fieldError.Namespace()
			})
			return fmt.Errorf("%w: missing or invalid %v", ErrInvalidSemester, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidSemester, err)
	}
	return nil
}

func decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("cannot decode input: %w", err)
	}
	return nil
}
