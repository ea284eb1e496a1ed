package utils

import "errors"

var ErrorMonthYearNotFound = errors.New("no month-year date token in filename")
