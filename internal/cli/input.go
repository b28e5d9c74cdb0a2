package cli

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/olebedev/when"
	whencommon "github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/Veraticus/tally/internal/common"
)

// DateLayout is the only date form the stores accept.
const DateLayout = "2006-01-02"

var (
	dateParser = newDateParser()
	isoShaped  = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

func newDateParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(whencommon.All...)
	return w
}

// ValidateDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", common.ErrInvalidInput, s)
	}
	return nil
}

// ParseDate accepts YYYY-MM-DD or a natural-language date such as
// "yesterday" and returns it in YYYY-MM-DD form.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	if isoShaped.MatchString(input) {
		if err := ValidateDate(input); err != nil {
			return "", err
		}
		return input, nil
	}

	// The phrase must be the whole input. A partial match such as the time
	// in "lunch at 5pm" would otherwise resolve to today.
	r, err := dateParser.Parse(input, now)
	if err != nil || r == nil || r.Index != 0 || len(r.Text) != len(input) {
		return "", fmt.Errorf("%w: could not understand date %q (use YYYY-MM-DD)", common.ErrInvalidInput, input)
	}
	return r.Time.Format(DateLayout), nil
}

// ParseID parses a positive record identifier.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid ID", common.ErrInvalidInput, s)
	}
	return id, nil
}

// ParseAmount parses a monetary amount. Negative values are refunds.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not a valid amount", common.ErrInvalidInput, s)
	}
	return amount, nil
}

// Confirm asks a yes/no question on the terminal. Aborting counts as no.
func Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return ok, nil
}
