package render

import (
	"encoding/json"
	"lending/handler/codes"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	Status(w, http.StatusOK, v)
}

// Status render v as json with statusCode
func Status(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		logrus.Errorln(err)
	}
}

// Text render with text
func Text(w http.ResponseWriter, t string) {
	w.Header().Set("Content-Type", "application/text")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(t)); err != nil {
		logrus.Errorln(err)
	}
}

// Error write err with the status of its twirp code, body {"code", "msg"}
func Error(w http.ResponseWriter, err error) {
	twerr := codes.FromError(err)
	statusCode := twirp.ServerHTTPStatusFromErrorCode(twerr.Code())
	if statusCode >= http.StatusInternalServerError {
		logrus.WithError(err).Errorln("request failed")
	}

	Status(w, statusCode, H{"code": codes.Of(twerr), "msg": twerr.Msg()})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NewError(twirp.InvalidArgument, err.Error()))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}
