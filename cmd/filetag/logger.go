/*
 * Copyright 2025 The PlanX Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"github.com/theopensystemslab/planx-new-sub000/api/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a production logger for the json format and a
// development logger otherwise. Both write to stderr.
func newLogger(level string, format string) (*zap.Logger, error) {
	var config zap.Config
	if format == "json" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
	}

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return config.Build()
}

// zapLogger 把 zap 适配成引擎日志接口
// zapLogger adapts a zap logger to types.Logger. The engine only logs its
// debug trace, so every line is written at debug level.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ types.Logger = (*zapLogger)(nil)

func newZapLogger(logger *zap.Logger) *zapLogger {
	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Printf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}
