package version

import (
	"fmt"
	"time"
)

// Name - имя ядра в логах и заголовках реплеев.
const Name = "hop-core"

// Заполняются через -ldflags "-X hop-core/internal/version.BuildDate=...".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Номер сборки - дни от первого релиза ядра.
var buildEpoch = time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки.
type Info struct {
	Name    string `json:"name"`
	BuildID int    `json:"buildId"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
	Branch  string `json:"branch,omitempty"`
	Err     string `json:"error,omitempty"`
}

// Known - номер сборки удалось вычислить.
func (i Info) Known() bool {
	return i.Err == ""
}

// CalculateBuildID переводит BuildDate в номер сборки.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}
	// Обе даты в UTC, деление часов не страдает от перевода часов
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current собирает метаданные текущего бинарника.
func Current() Info {
	info := Info{Name: Name, Date: BuildDate, Commit: BuildCommit, Branch: BuildBranch}
	id, err := CalculateBuildID()
	if err != nil {
		info.Err = err.Error()
		return info
	}
	info.BuildID = id
	return info
}

// String - строка для лога при старте.
func String() string {
	info := Current()
	if !info.Known() {
		return fmt.Sprintf("%s dev build (%s)", info.Name, info.Err)
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s]",
		info.Name, info.BuildID, info.Date,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
