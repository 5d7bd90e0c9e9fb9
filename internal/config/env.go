package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override profile contact details.
const (
	EnvEmail        = "TERMFOLIO_EMAIL"
	EnvPhoneDisplay = "TERMFOLIO_PHONE_DISPLAY"
	EnvPhoneDial    = "TERMFOLIO_PHONE_DIAL"
	EnvUserAgent    = "TERMFOLIO_USER_AGENT"
)

// DefaultEnvFile is read when no env file is given and it exists.
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from path into the process environment
// without overriding variables that are already set. A missing default
// file is not an error; a missing explicit file is.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// WithOverrides returns a copy of p with contact details replaced by any
// non-empty override variables found through lookup.
func (p Profile) WithOverrides(lookup LookupFunc) (Profile, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	doc := p.doc
	if v, ok := lookup(EnvEmail); ok && v != "" {
		doc.Contact.Email = v
	}
	if v, ok := lookup(EnvPhoneDisplay); ok && v != "" {
		doc.Contact.PhoneDisplay = v
		doc.Contact.PhoneDial = dialable(v)
	}
	if v, ok := lookup(EnvPhoneDial); ok && v != "" {
		doc.Contact.PhoneDial = v
	}
	if err := validate(doc); err != nil {
		return Profile{}, fmt.Errorf("invalid environment override: %w", err)
	}
	return Profile{doc: doc}, nil
}
