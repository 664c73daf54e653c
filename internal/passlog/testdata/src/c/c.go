// Package c -- сценарии предлагаемых правок для избыточных accessor-вызовов.
package c

import (
	"bytes"
	"strings"

	"c/log"
)

func report(buf *bytes.Buffer, sb *strings.Builder) {
	log.Infof("state: %s", buf.String()) // want "unnecessary String\\(\\) call"
	log.Infof("built: %s", sb.String()) // want "unnecessary String\\(\\) call"
	log.Infof("raw: %s", buf.Bytes()) // want "unnecessary Bytes\\(\\) call"
}
