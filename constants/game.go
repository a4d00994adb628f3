package constants

// Layout ratios, all relative to the shorter screen dimension
const (
	// GridSpanDivisor: the grid spans 1/GridSpanDivisor of the short side (center +- short/4)
	GridSpanDivisor = 2

	// DotRadiusDivisor yields ~49px dots on a 1080px wide screen
	DotRadiusDivisor = 22

	// TapMarginDivisor is the extra hit margin beyond the dot radius (~24px on 1080px)
	TapMarginDivisor = 45
)

// Labels
const (
	// WaitingLabel is shown above the grid before the countdown starts
	WaitingLabel = "Get ready"

	// TimeLabelPrecision is the number of decimals of the stopwatch label
	TimeLabelPrecision = 3
)
