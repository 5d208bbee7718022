package command

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/eaglebank/workshop/shared/models"
)

// HoldingReader provides the holdings graph to export.
type HoldingReader interface {
	Holdings() []models.Holding
}

// ExportCommandService holds the operations with side effects on the console
// or the filesystem. The graph itself is never modified.
type ExportCommandService struct {
	repo    HoldingReader
	console io.Writer
}

func NewExportCommandService(repo HoldingReader, console io.Writer) *ExportCommandService {
	return &ExportCommandService{
		repo:    repo,
		console: console,
	}
}

// ShowAllUsers prints every user's full name, sorted by first name descending.
func (s *ExportCommandService) ShowAllUsers() error {
	users := slices.SortedStableFunc(models.UserSeq(s.repo.Holdings()), func(a, b models.User) int {
		return cmp.Compare(b.FirstName, a.FirstName)
	})
	w := bufio.NewWriter(s.console)
	for _, u := range users {
		if _, err := fmt.Fprintln(w, u.FullName()); err != nil {
			return fmt.Errorf("show users: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("show users: %w", err)
	}
	return nil
}

// WriteAccounts writes one number|amount|currency line per account in graph order.
func (s *ExportCommandService) WriteAccounts(w io.Writer) error {
	for a := range models.AccountSeq(s.repo.Holdings()) {
		if _, err := io.WriteString(w, models.NewAccountRecord(a).Line()+"\n"); err != nil {
			return fmt.Errorf("write account %s: %w", a.Number, err)
		}
	}
	return nil
}

// SaveAccountsInFile creates or truncates path and writes the accounts into it.
// The file is closed on every path; a close error is reported when nothing
// else failed first.
func (s *ExportCommandService) SaveAccountsInFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create accounts file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close accounts file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := s.WriteAccounts(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush accounts file: %w", err)
	}
	log.Printf("Saved accounts to %s", path)
	return nil
}
