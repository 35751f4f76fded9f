// Package handlers implements the HTTP surface of the game server.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func sendJSON(w http.ResponseWriter, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(payload)
	return err
}

func sendJSONOrLog(w http.ResponseWriter, logger *slog.Logger, v any) {
	if err := sendJSON(w, v); err != nil {
		logger.Error(
			"unable to send response",
			slog.Any("response", v),
			slog.Any("error", err),
		)
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
