package ui

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"zscorecalc/app"
	"zscorecalc/internal"
)

// Session owns the display state of one calculator window: the data text,
// the threshold text and the last report. The report service itself is
// stateless; all mutation happens here.
type Session struct {
	service *app.ReportService
	logger  *internal.Logger

	data      strings.Builder
	threshold string
	output    string
}

// NewSession creates a session with an empty data field and the given
// threshold text pre-filled
func NewSession(service *app.ReportService, threshold string, logger *internal.Logger) *Session {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if service == nil {
		service = app.NewReportService(logger)
	}
	return &Session{
		service:   service,
		logger:    logger,
		threshold: threshold,
	}
}

// SetData replaces the data text
func (s *Session) SetData(text string) {
	s.data.Reset()
	s.data.WriteString(text)
}

// AppendLine adds one line of data text
func (s *Session) AppendLine(line string) {
	s.data.WriteString(line)
	s.data.WriteByte('\n')
}

// Data returns the current data text
func (s *Session) Data() string {
	return s.data.String()
}

// SetThreshold replaces the threshold text
func (s *Session) SetThreshold(text string) {
	s.threshold = text
}

// Threshold returns the current threshold text
func (s *Session) Threshold() string {
	return s.threshold
}

// Output returns the last report, or "" when nothing has been calculated
func (s *Session) Output() string {
	return s.output
}

// Calculate rebuilds the output from the current data and threshold. Empty
// data leaves the output untouched and returns nil. A bad threshold leaves
// the output untouched and returns an error matching app.ErrThreshold whose
// message should be shown to the user.
func (s *Session) Calculate() error {
	runID := uuid.New()

	report, err := s.service.BuildReport(s.data.String(), s.threshold)
	switch {
	case errors.Is(err, app.ErrEmptySeries):
		s.logger.Info("run %s: no values to calculate", runID)
		return nil
	case err != nil:
		s.logger.Warn("run %s: %v", runID, err)
		return err
	}

	s.output = report
	s.logger.Info("run %s: report ready (%d bytes)", runID, len(report))
	return nil
}

// Clear empties the data and output. The threshold is kept.
func (s *Session) Clear() {
	s.data.Reset()
	s.output = ""
}
