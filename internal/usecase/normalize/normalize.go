// Package normalize converts the loosely shaped registration payload fields
// into their canonical forms. Clients send the same field as a comma-separated
// string, an array of strings, an array of objects, or a single object, so
// every function here is total: it accepts any of those shapes and always
// returns a value, never an error.
//
// All functions are pure. The same input always yields the same output and
// nothing here touches I/O or shared state.
package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"mediq/internal/domain/entity"
)

// placeholderInstitution fills the institution slot when a qualification
// arrives as a bare degree name.
const placeholderInstitution = "To be updated"

// placeholderAddress fills the address slot when a hospital affiliation
// arrives as a bare hospital name.
const placeholderAddress = "To be updated"

var digitRunPattern = regexp.MustCompile(`\d+`)

// Qualifications canonicalizes the qualifications field.
//
//   - comma-separated string: one entry per trimmed segment, with the
//     placeholder institution and the given year
//   - array of strings: same per-element wrapping
//   - array of objects: passed through unchanged
//   - single object: wrapped in a one-element slice
//
// The year parameter is the year stamped onto string-form entries; callers
// pass time.Now().Year() so the function itself stays pure.
func Qualifications(input any, year int) []entity.Qualification {
	switch value := input.(type) {
	case nil:
		return []entity.Qualification{}
	case string:
		return qualificationsFromStrings(splitAndTrim(value), year)
	case []string:
		return qualificationsFromStrings(trimAll(value), year)
	case []entity.Qualification:
		return value
	case entity.Qualification:
		return []entity.Qualification{value}
	case map[string]any:
		return []entity.Qualification{qualificationFromMap(value, year)}
	case []any:
		result := make([]entity.Qualification, 0, len(value))
		for _, elem := range value {
			switch item := elem.(type) {
			case string:
				trimmed := strings.TrimSpace(item)
				if trimmed == "" {
					continue
				}
				result = append(result, entity.Qualification{
					Degree:      trimmed,
					Institution: placeholderInstitution,
					Year:        year,
				})
			case map[string]any:
				result = append(result, qualificationFromMap(item, year))
			case entity.Qualification:
				result = append(result, item)
			}
		}

		return result
	default:
		return []entity.Qualification{}
	}
}

func qualificationsFromStrings(degrees []string, year int) []entity.Qualification {
	result := make([]entity.Qualification, 0, len(degrees))
	for _, degree := range degrees {
		result = append(result, entity.Qualification{
			Degree:      degree,
			Institution: placeholderInstitution,
			Year:        year,
		})
	}

	return result
}

func qualificationFromMap(data map[string]any, year int) entity.Qualification {
	qualification := entity.Qualification{
		Degree:      stringFromAny(data["degree"]),
		Institution: stringFromAny(data["institution"]),
		Year:        year,
	}
	if qualification.Institution == "" {
		qualification.Institution = placeholderInstitution
	}
	if parsed, ok := intFromAny(data["year"]); ok {
		qualification.Year = parsed
	}

	return qualification
}

// StringList canonicalizes set-of-strings fields such as specialties and
// languages. A comma-separated string is split and trimmed, an array is
// passed through, and any other non-empty value becomes a one-element slice
// of its string form.
func StringList(input any) []string {
	switch value := input.(type) {
	case nil:
		return []string{}
	case string:
		return splitAndTrim(value)
	case []string:
		return trimAll(value)
	case []any:
		result := make([]string, 0, len(value))
		for _, elem := range value {
			if s := strings.TrimSpace(stringFromAny(elem)); s != "" {
				result = append(result, s)
			}
		}

		return result
	default:
		if s := strings.TrimSpace(stringFromAny(value)); s != "" {
			return []string{s}
		}

		return []string{}
	}
}

// HospitalAffiliations canonicalizes the hospital affiliations field using
// the same shape rules as Qualifications. String-form entries get the
// placeholder address and are marked current.
func HospitalAffiliations(input any) []entity.HospitalAffiliation {
	switch value := input.(type) {
	case nil:
		return []entity.HospitalAffiliation{}
	case string:
		return affiliationsFromStrings(splitAndTrim(value))
	case []string:
		return affiliationsFromStrings(trimAll(value))
	case []entity.HospitalAffiliation:
		return value
	case entity.HospitalAffiliation:
		return []entity.HospitalAffiliation{value}
	case map[string]any:
		return []entity.HospitalAffiliation{affiliationFromMap(value)}
	case []any:
		result := make([]entity.HospitalAffiliation, 0, len(value))
		for _, elem := range value {
			switch item := elem.(type) {
			case string:
				trimmed := strings.TrimSpace(item)
				if trimmed == "" {
					continue
				}
				result = append(result, entity.HospitalAffiliation{
					Name:    trimmed,
					Address: placeholderAddress,
					Current: true,
				})
			case map[string]any:
				result = append(result, affiliationFromMap(item))
			case entity.HospitalAffiliation:
				result = append(result, item)
			}
		}

		return result
	default:
		return []entity.HospitalAffiliation{}
	}
}

func affiliationsFromStrings(names []string) []entity.HospitalAffiliation {
	result := make([]entity.HospitalAffiliation, 0, len(names))
	for _, name := range names {
		result = append(result, entity.HospitalAffiliation{
			Name:    name,
			Address: placeholderAddress,
			Current: true,
		})
	}

	return result
}

func affiliationFromMap(data map[string]any) entity.HospitalAffiliation {
	affiliation := entity.HospitalAffiliation{
		Name:    stringFromAny(data["name"]),
		Address: stringFromAny(data["address"]),
		Current: true,
	}
	if affiliation.Address == "" {
		affiliation.Address = placeholderAddress
	}
	if current, ok := data["current"].(bool); ok {
		affiliation.Current = current
	}

	return affiliation
}

// Experience canonicalizes the years-of-experience field. A string yields
// its first contiguous digit run ("10+ years" -> 10), a number is used
// as-is, and anything else is 0.
func Experience(input any) int {
	switch value := input.(type) {
	case string:
		digits := digitRunPattern.FindString(value)
		if digits == "" {
			return 0
		}
		parsed, err := strconv.Atoi(digits)
		if err != nil {
			return 0
		}

		return parsed
	default:
		if parsed, ok := intFromAny(input); ok {
			return parsed
		}

		return 0
	}
}

// ConsultationFee canonicalizes the consultation fee field. A bare number or
// numeric string is replicated across all three channels. For an object the
// in-person amount defaults to 0 when absent, and a missing video or phone
// amount falls back to the in-person amount. Note that an object carrying
// only an in-person amount therefore collapses to a flat fee across all
// channels, exactly like the bare-number form; downstream consumers rely on
// this fallback, so do not tighten it.
func ConsultationFee(input any) entity.ConsultationFee {
	switch value := input.(type) {
	case nil:
		return entity.ConsultationFee{}
	case entity.ConsultationFee:
		return value
	case map[string]any:
		fee := entity.ConsultationFee{}
		if inPerson, ok := intFromAny(value["inPerson"]); ok {
			fee.InPerson = inPerson
		}
		fee.Video = fee.InPerson
		if video, ok := intFromAny(value["video"]); ok {
			fee.Video = video
		}
		fee.Phone = fee.InPerson
		if phone, ok := intFromAny(value["phone"]); ok {
			fee.Phone = phone
		}

		return fee
	default:
		flat, ok := intFromAny(input)
		if !ok {
			flat = 0
		}

		return entity.ConsultationFee{
			InPerson: flat,
			Video:    flat,
			Phone:    flat,
		}
	}
}

// splitAndTrim splits a comma-separated string into trimmed non-empty
// segments, preserving order.
func splitAndTrim(value string) []string {
	segments := strings.Split(value, ",")
	result := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// stringFromAny renders scalar JSON values as strings; non-scalar values
// render as empty.
func stringFromAny(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// intFromAny extracts an integer from the numeric shapes a decoded JSON
// payload can carry, plus numeric strings.
func intFromAny(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return int(parsed), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}
