package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
)

var rosterHeader = []interface{}{"회원번호", "이름", "이메일", "학교", "소속", "직책", "생년월일", "성별"}

// RosterExporter overwrites one sheet with the current member directory.
type RosterExporter struct {
	service       *gsheets.Service
	spreadsheetID string
	sheetName     string
}

func NewRosterExporter(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*RosterExporter, error) {
	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &RosterExporter{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// WriteRoster clears the sheet and writes a header row followed by one row per member.
func (e *RosterExporter) WriteRoster(ctx context.Context, entries []domain.DirectoryEntry) error {
	logger.ExternalServiceCall("sheets", "WriteRoster", "spreadsheet_id", e.spreadsheetID, "rows", len(entries))

	_, err := e.service.Spreadsheets.Values.Clear(e.spreadsheetID, e.sheetName, &gsheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		logger.ExternalServiceResult("sheets", "WriteRoster", err)
		return fmt.Errorf("unable to clear roster sheet: %w", err)
	}

	valueRange := &gsheets.ValueRange{Values: RosterRows(entries)}
	_, err = e.service.Spreadsheets.Values.Update(
		e.spreadsheetID,
		e.sheetName+"!A1",
		valueRange,
	).ValueInputOption("RAW").Context(ctx).Do()
	logger.ExternalServiceResult("sheets", "WriteRoster", err)
	if err != nil {
		return fmt.Errorf("unable to write roster: %w", err)
	}

	return nil
}

// RosterRows renders the directory as sheet rows, header first.
func RosterRows(entries []domain.DirectoryEntry) [][]interface{} {
	rows := make([][]interface{}, 0, len(entries)+1)
	rows = append(rows, rosterHeader)
	for _, e := range entries {
		role := deref(e.Role)
		if role == "" && e.President {
			role = "임원"
		}
		rows = append(rows, []interface{}{
			deref(e.MemberCode),
			e.Name,
			e.Email,
			deref(e.School),
			deref(e.Org),
			role,
			deref(e.Birth),
			deref(e.Sex),
		})
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
