package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-screener/internal/types"
)

// DriveFetcher downloads resume files from Google Drive using service
// account credentials.
type DriveFetcher struct {
	service *drive.Service
}

// NewDriveFetcher creates a Drive-backed fetcher from a service account
// credentials file.
func NewDriveFetcher(ctx context.Context, credentialsPath string) (*DriveFetcher, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("credentials path is required")
	}

	service, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &DriveFetcher{service: service}, nil
}

// Fetch resolves the locator to a file id, reads the file's metadata for
// its name, and downloads the content.
func (f *DriveFetcher) Fetch(ctx context.Context, locator string) ([]byte, string, error) {
	fileID, ok := ExtractFileID(locator)
	if !ok {
		return nil, "", types.E(types.KindLocatorInvalid, "unrecognized resume locator %q", locator)
	}

	meta, err := f.service.Files.Get(fileID).Fields("name").Context(ctx).Do()
	if err != nil {
		return nil, "", classifyDriveError(err, fileID)
	}
	filename := meta.Name
	if filename == "" {
		filename = fileID
	}

	resp, err := f.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, "", classifyDriveError(err, fileID)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", classifyDriveError(err, fileID)
	}

	return data, filename, nil
}

// classifyDriveError maps Drive API errors onto the fetch taxonomy.
func classifyDriveError(err error, fileID string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return types.Wrap(types.KindFetchTimeout, err, "fetch of %s timed out", fileID)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return types.Wrap(types.KindFetchNotFound, err, "file %s not found", fileID)
		case http.StatusForbidden, http.StatusUnauthorized:
			return types.Wrap(types.KindFetchAccessDenied, err, "access denied for file %s", fileID)
		}
	}

	// Network-level failures without a status code are treated as timeouts
	// so they get the transient retry policy.
	return types.Wrap(types.KindFetchTimeout, err, "fetch of %s failed", fileID)
}
