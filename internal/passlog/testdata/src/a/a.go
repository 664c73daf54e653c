// Package a -- сценарии проверки анализатора passlogparams.
package a

import (
	"bytes"

	"a/log"
)

type level int32

func consistentCalls() {
	var (
		n32 int32
		n8  int8
		u64 uint64
		f32 float32
		f64 float64
		s   string
		l   level
		buf bytes.Buffer
	)
	log.Info("plain message")
	log.Infof("no specifiers here")
	log.Infof("escaped 100%% done")
	log.Infof("ok: %d %hhd %llu %f %lf %s", n32, n8, u64, f32, f64, s)
	log.Infof("enum: %d", l)
	log.Infof("buffer: %s", buf)
	log.Infof("char: %c", byte('y'))
	log.Infof("ptr: %p", &n32)
	log.Infof("extension verb: %v", buf)
	log.Infof(s) // формат не константа -- вызов не проверяется
}

func countMismatch() {
	var s string
	log.Infof("Test: %s")        // want "format string requires 1 arguments but 0 were provided"
	log.Infof("Test: %s %d", s)  // want "format string requires 2 arguments but 1 were provided"
	log.Infof("Test: %s", s, 42) // want "format string requires 1 arguments but 2 were provided"
	log.Infof("no args", s)      // want "format string requires 0 arguments but 1 were provided"
}

func typeMismatch() {
	var (
		n64 int64
		n32 int32
		n8  int8
		u32 uint32
		u64 uint64
		f32 float32
		r   rune
		buf bytes.Buffer
	)
	log.Infof("Values: %d %f %s", n64, n32, f32) // want "argument type <int64> does not match format specifier '%d'" "argument type <int32> does not match format specifier '%f'" "argument type <float32> does not match format specifier '%s'"
	log.Infof("Int: %d", n8)                     // want "argument type <int8> does not match format specifier '%d'"
	log.Errorf("Unsigned: %d", u32)              // want "argument type <uint32> does not match format specifier '%d'"
	log.Infof("Signed: %u", n32)                 // want "argument type <int32> does not match format specifier '%u'"
	log.Infof("Wide: %llu %d", u64, u64)         // want "argument type <uint64> does not match format specifier '%d'"
	log.Infof("Cast: %d", int64(n32))            // want "argument type <int64> does not match format specifier '%d'"
	log.Infof("Rune: %c", r)                     // want "argument type <rune> does not match format specifier '%c'"
	log.Infof("Buffer: %d", buf)                 // want "argument type <bytes.Buffer> does not match format specifier '%d'"
}

func redundantAccessor() {
	var buf bytes.Buffer
	log.Infof("state: %s", buf.String()) // want "unnecessary String\\(\\) call"
}

// helperf не входит в перечень лог-функций: вызовы не инспектируются.
func helperf(format string, args ...interface{}) {}

func unknownCallee() {
	var f32 float32
	helperf("String: %s", f32)
	helperf("Test: %s")
}
