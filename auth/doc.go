// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth checks location passcodes.

# Passcodes

Each location has a shared numeric passcode. POST /api/locations/ compares
the supplied password against it:

	valid := auth.CheckPasscode(loc.Passcode, req.Password)

The password is whatever the JSON decoder produced. Only a number equal to
the passcode is valid; strings, booleans and fractions are not. The
comparison runs in constant time.

# No Sessions

A successful check issues nothing: no token, cookie or session. Callers get
{"valid?": true} and every later request is anonymous.
*/
package auth
