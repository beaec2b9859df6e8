package reservation

import (
	// 内部引用
	code "github.com/scienceol/labdesk/pkg/common/code"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

// ValidateWindow checks a proposed time window against school hours and
// returns the duration in minutes. It runs before any network round trip;
// a failure here means no request is issued.
func ValidateWindow(startTime, endTime string) (int, error) {
	start, err := utils.ClockMinutes(startTime)
	if err != nil {
		return 0, code.InvalidTimeWindow.WithErr(err)
	}
	end, err := utils.ClockMinutes(endTime)
	if err != nil {
		return 0, code.InvalidTimeWindow.WithErr(err)
	}

	duration := end - start
	if duration <= 0 {
		return 0, code.InvalidTimeWindow
	}
	if start < SchoolOpenMinutes || start > SchoolCloseMinutes ||
		end < SchoolOpenMinutes || end > SchoolCloseMinutes {
		return 0, code.OutsideSchoolHours
	}

	return duration, nil
}
