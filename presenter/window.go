package presenter

import (
	"weatherly/datasource"
	"weatherly/models"
)

// windowSize is the number of forward-looking hourly slots.
const windowSize = 24

// SelectWindow produces the hourly forecast window: today's records
// from currentHour onward, padded from tomorrow's records up to 24
// slots. The first slot is always relabeled "Now". When tomorrow is
// unavailable the window is simply shorter, which is not an error.
func SelectWindow(today, tomorrow []datasource.Hour, currentHour int) ([]models.HourlySlot, error) {
	if currentHour < 0 {
		currentHour = 0
	}
	if currentHour > len(today) {
		currentHour = len(today)
	}

	window := make([]models.HourlySlot, 0, windowSize)
	for _, h := range today[currentHour:] {
		if len(window) >= windowSize {
			break
		}
		slot, err := NormalizeHour(h)
		if err != nil {
			return nil, err
		}
		window = append(window, slot)
	}
	for _, h := range tomorrow {
		if len(window) >= windowSize {
			break
		}
		slot, err := NormalizeHour(h)
		if err != nil {
			return nil, err
		}
		window = append(window, slot)
	}

	if len(window) > 0 {
		window[0].Time = "Now"
	}
	return window, nil
}

// ThreeHourly thins a day's hourly records to every third hour for the
// forecast detail view
func ThreeHourly(hours []datasource.Hour) ([]models.HourlySlot, error) {
	slots := make([]models.HourlySlot, 0, (len(hours)+2)/3)
	for i, h := range hours {
		if i%3 != 0 {
			continue
		}
		slot, err := NormalizeHour(h)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
