package library

import "fmt"

// magazineFeeCents is the late fee per day, in cents.
const magazineFeeCents = 20

// Magazine is a periodical identified by its issue number.
type Magazine struct {
	itemCore
	issueNumber int
}

// NewMagazine validates title, year and issue number in that order and
// returns a new available magazine.
func NewMagazine(title string, year, issueNumber int) (*Magazine, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := validatePositive("issue number", issueNumber); err != nil {
		return nil, err
	}
	return &Magazine{itemCore: newItemCore(t, year), issueNumber: issueNumber}, nil
}

func (m *Magazine) IssueNumber() int { return m.issueNumber }

// SetIssueNumber replaces the issue number; it must stay positive.
func (m *Magazine) SetIssueNumber(issue int) error {
	if err := validatePositive("issue number", issue); err != nil {
		return err
	}
	m.issueNumber = issue
	return nil
}

func (m *Magazine) CalculateLateFee(daysLate int) float64 {
	return lateFee(daysLate, magazineFeeCents)
}

func (m *Magazine) Info() string {
	return fmt.Sprintf("Magazine: %s (%d) - %s - ID: %s - Issue: #%d",
		m.title, m.year, m.status(), m.id, m.issueNumber)
}
