// Package challenge parses WWW-Authenticate header values (RFC 7235).
//
// The grammar is ambiguous in one spot: commas separate both auth-params
// within a challenge and the challenges themselves. A bare token followed by
// "=" is read as an auth-param of the current challenge; any other token
// starts a new challenge. token68 payloads (e.g. Negotiate blobs) are
// recognized by their trailing "=" run and skipped, since they carry no
// parameters.
package challenge

import "strings"

// Challenge is one parsed challenge: an auth scheme and its auth-params.
// Parameter names are lowercased; values are unquoted.
type Challenge struct {
	Scheme     string
	Parameters map[string]string
}

// Parse splits a WWW-Authenticate header value into its challenges. A
// malformed header yields whatever challenges could be recovered, possibly
// none.
func Parse(header string) []Challenge {
	var challenges []Challenge
	var cur *Challenge

	i := 0
	for i < len(header) {
		for i < len(header) && (header[i] == ' ' || header[i] == '\t' || header[i] == ',') {
			i++
		}
		if i >= len(header) {
			break
		}

		start := i
		for i < len(header) && isTokenChar(header[i]) {
			i++
		}
		tok := header[start:i]
		if tok == "" {
			// Unparseable byte; skip it rather than loop forever.
			i++
			continue
		}

		j := i
		for j < len(header) && (header[j] == ' ' || header[j] == '\t') {
			j++
		}

		if j < len(header) && header[j] == '=' {
			k := j
			for k < len(header) && header[k] == '=' {
				k++
			}
			if k >= len(header) || header[k] == ',' || header[k] == ' ' || header[k] == '\t' {
				// token68 tail, e.g. "Negotiate YWJj=="; no parameters.
				i = k
				continue
			}
			if cur == nil {
				// Parameter before any scheme; nothing to attach it to.
				i = k
				continue
			}
			j++
			var value string
			if j < len(header) && header[j] == '"' {
				j++
				vstart := j
				for j < len(header) && header[j] != '"' {
					j++
				}
				value = header[vstart:j]
				if j < len(header) {
					j++
				}
			} else {
				vstart := j
				for j < len(header) && header[j] != ',' && header[j] != ' ' && header[j] != '\t' {
					j++
				}
				value = header[vstart:j]
			}
			cur.Parameters[strings.ToLower(tok)] = value
			i = j
			continue
		}

		challenges = append(challenges, Challenge{Scheme: tok, Parameters: map[string]string{}})
		cur = &challenges[len(challenges)-1]
		i = j
	}

	return challenges
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
