// Package clock wraps the time source so history timestamps can be made
// deterministic in tests.
package clock

import "time"

// NowFunc supplies the current time. Tests may replace it.
var NowFunc = time.Now

// Now returns the current time via NowFunc.
func Now() time.Time { return NowFunc() }
