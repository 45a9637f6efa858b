package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"mint/core"

	"github.com/sirupsen/logrus"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorln("render json:", err)
	}
}

// Error write error with a status derived from the failure kind. Invalid
// input stays a client error; everything remote-shaped is a bad gateway.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := int(core.ErrUnknown)

	var failure *core.Failure
	var remote *core.RemoteError

	switch {
	case errors.As(err, &failure):
		code = int(failure.Code)
		if failure.Code == core.ErrInvalidInput || failure.Code == core.ErrInvalidAddress {
			status = http.StatusBadRequest
		} else {
			status = http.StatusBadGateway
		}
	case errors.As(err, &remote):
		code = int(core.ErrRemote)
		status = http.StatusBadGateway
	}

	write(w, status, code, err)
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	write(w, http.StatusBadRequest, int(core.ErrInvalidInput), err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	write(w, http.StatusNotFound, -1, err)
}

func write(w http.ResponseWriter, status, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if e := json.NewEncoder(w).Encode(H{"code": code, "msg": err.Error()}); e != nil {
		logrus.Errorln("render error:", e)
	}
}
