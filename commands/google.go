package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const mimeSpreadsheet = "application/vnd.google-apps.spreadsheet"

type services struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// authorize builds an HTTP client authenticated with the service account
// key file.
func authorize(ctx context.Context, credentials string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file (%w)", err)
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials file (%w)", err)
	}

	return config.Client(ctx), nil
}

func newServices(ctx context.Context, credentials string) (*services, error) {
	client, err := authorize(ctx, credentials, drive.DriveScope, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, err
	}

	gsheets, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive client (%w)", err)
	}

	return &services{
		sheets: gsheets,
		drive:  gdrive,
	}, nil
}

// verifySpreadsheet checks that the file id exists and is a Google
// spreadsheet before any worksheet is fetched from it.
func verifySpreadsheet(ctx context.Context, gdrive *drive.Service, id, label string, log *zap.SugaredLogger) error {
	meta, err := gdrive.Files.Get(id).Fields("id", "name", "mimeType").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to fetch %s (id %s) (%w)", label, id, err)
	}

	if meta.MimeType != mimeSpreadsheet {
		return fmt.Errorf("%s (id %s) is not a Google spreadsheet (%s)", label, id, meta.MimeType)
	}

	log.Infof("%s found: %s (id %s)", label, meta.Name, id)

	return nil
}
