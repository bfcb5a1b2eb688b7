package jaxr

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (e *Exception) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if message, ok := e.message(); ok {
		enc.AddString("message", message)
	}
	if requestID := e.RequestID(); requestID != "" {
		enc.AddString("requestId", requestID)
	}
	enc.AddInt("status", e.Status())

	available, err := e.IsAvailable()
	if err != nil {
		return err
	}
	enc.AddBool("available", available)

	causes := Chain(e.Cause())
	if len(causes) == 0 {
		return nil
	}

	return enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, cause := range causes {
			arr.AppendString(cause.Error())
		}
		return nil
	}))
}

// Field encodes the first Exception found in err's chain as an "exception"
// object. Other errors are logged with zap.Error.
func Field(err error) zap.Field {
	var e *Exception
	if errors.As(err, &e) {
		return zap.Object("exception", e)
	}

	return zap.Error(err)
}
