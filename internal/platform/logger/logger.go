/*
Copyright Nomura Research Institute, Ltd.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is an instance of the global logrus.Logger
var Log *logrus.Logger

var initializeLogger sync.Once

func init() {
	Log = logrus.New()
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
}

// InitLogger configures the global logger instance. Safe to call more than
// once; only the first call takes effect.
func InitLogger(level string, format string) {
	initializeLogger.Do(func() {
		logLevel, err := logrus.ParseLevel(level)
		if err != nil {
			logLevel = logrus.InfoLevel
		}
		Log.SetLevel(logLevel)
		Log.SetFormatter(buildFormatter(format))
	})
}

func buildFormatter(format string) logrus.Formatter {
	switch strings.ToUpper(format) {
	case "JSON":
		return &logrus.JSONFormatter{}
	default:
		return &logrus.TextFormatter{FullTimestamp: true}
	}
}
