package conference

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the record shape at the fetcher boundary so downstream
// stages can assume it. Optional fields may be empty, but when present they
// must be well-formed: dates in ISO form, the domain (if the fetcher set one)
// from the fixed enumeration, at most five tags.
func (c *Conference) Validate() error {
	domains := make([]interface{}, len(Domains))
	for i, d := range Domains {
		domains[i] = d
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Source, validation.Required),
		validation.Field(&c.StartDate, validation.Match(isoDatePattern)),
		validation.Field(&c.EndDate, validation.Match(isoDatePattern)),
		validation.Field(&c.Domain, validation.In(domains...)),
		validation.Field(&c.Tags, validation.Length(0, 5)),
	)
	if err != nil {
		return err
	}

	if c.CFP != nil {
		return validation.ValidateStruct(c.CFP,
			validation.Field(&c.CFP.URL, validation.Required),
			validation.Field(&c.CFP.EndDate, validation.Match(isoDatePattern)),
		)
	}
	return nil
}
