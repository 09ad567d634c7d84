package roast

import (
	"fmt"

	apperrors "github.com/yanqian/itinerary-roaster/pkg/errors"
)

// Error codes reported by the roast pipeline.
const (
	CodeMissingCredential = "missing_credential"
	CodeEmptyInput        = "empty_input"
	CodeInvalidURL        = "invalid_url"
	CodeFetchFailed       = "fetch_failed"
	CodeProviderError     = "provider_error"
	CodeEmptyRoast        = "empty_roast"
	CodeGarbledResponse   = "garbled_response"
)

func errMissingCredential() error {
	return apperrors.Wrap(CodeMissingCredential, "The completion provider API key is not configured.", nil)
}

func errEmptyItinerary() error {
	return apperrors.Wrap(CodeEmptyInput, "Itinerary is empty. Please provide some details.", nil)
}

func errEmptyVoiceNote() error {
	return apperrors.Wrap(CodeEmptyInput, "Voice note is empty. Please provide some details.", nil)
}

func errEmptySheet() error {
	return apperrors.Wrap(CodeEmptyInput, "The first sheet of your Google Sheet appears to be empty or could not be read.", nil)
}

func errInvalidSheetURL() error {
	return apperrors.Wrap(CodeInvalidURL, "Invalid Google Sheet URL provided.", nil)
}

func errMissingSheetID() error {
	return apperrors.Wrap(CodeInvalidURL, "Could not extract Sheet ID from URL.", nil)
}

func errSheetStatus(status int, exportURL string) error {
	msg := fmt.Sprintf("Could not fetch sheet (Status: %d) %s. Make sure it's shared publicly (\"Anyone with the link can view\") and the link is correct.", status, exportURL)
	return apperrors.Wrap(CodeFetchFailed, msg, nil)
}

func errSheetTransport(err error) error {
	return apperrors.Wrap(CodeFetchFailed, "Failed to process Google Sheet. "+err.Error(), err)
}

func errProvider(err error) error {
	return apperrors.Wrap(CodeProviderError, "AI interaction failed. Details: "+err.Error(), err)
}

func errEmptyRoast() error {
	return apperrors.Wrap(CodeEmptyRoast, "The AI gave a very short (or empty) roast. Try being more detailed!", nil)
}

func errGarbledResponse() error {
	return apperrors.Wrap(CodeGarbledResponse, "The AI's response was a bit garbled. Please try again!", nil)
}

func errUnknownKind(kind TaskKind) error {
	return apperrors.Wrap(CodeEmptyInput, fmt.Sprintf("Unsupported itinerary input %q.", kind), nil)
}
