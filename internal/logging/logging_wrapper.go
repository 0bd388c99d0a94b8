package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a handler to http.HandlerFunc, giving it a
// per-request LogData (also reachable through the request context) and
// emitting a single structured line when the handler finishes.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		req = req.WithContext(ContextWithLogData(req.Context(), logData))

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
