/*
 *     Copyright 2023 The NetBox LoadBalancer Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// CoreLogger is the application logger.
	CoreLogger *zap.SugaredLogger

	// GinLogger is the request logger used by the gin middlewares.
	GinLogger *zap.SugaredLogger

	level zap.AtomicLevel
)

func init() {
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	config := zap.NewProductionConfig()
	config.Level = level
	log, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1))
	if err == nil {
		sugar := log.Sugar()
		CoreLogger = sugar
		GinLogger = sugar
	}
}

// SetLevel updates the log level of every logger.
func SetLevel(l zapcore.Level) {
	Infof("change log level to %s", l.String())
	level.SetLevel(l)
}

func Info(args ...any) {
	CoreLogger.Info(args...)
}

func Infof(template string, args ...any) {
	CoreLogger.Infof(template, args...)
}

func Warn(args ...any) {
	CoreLogger.Warn(args...)
}

func Warnf(template string, args ...any) {
	CoreLogger.Warnf(template, args...)
}

func Error(args ...any) {
	CoreLogger.Error(args...)
}

func Errorf(template string, args ...any) {
	CoreLogger.Errorf(template, args...)
}

func Fatal(args ...any) {
	CoreLogger.Fatal(args...)
}

func Fatalf(template string, args ...any) {
	CoreLogger.Fatalf(template, args...)
}
