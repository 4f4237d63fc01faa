package timezone

import "time"

// Las citas llegan sin zona horaria; todo el sistema opera en hora peninsular.
const DefaultTimezone = "Europe/Madrid"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Default() *time.Location {
	return Location(DefaultTimezone)
}

func Now() time.Time {
	return time.Now().In(Default())
}
