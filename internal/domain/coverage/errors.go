package coverage

import "errors"

var ErrRuleNotFound = errors.New("coverage rule not found")
