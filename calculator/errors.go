package calculator

import "errors"

// 计算过程中可能出现的错误类型，返回的错误均包装其中之一，可用 errors.Is 判断
var (
	ErrInvalidGeometry            = errors.New("invalid geometry")
	ErrInvalidFlowRate            = errors.New("invalid flow rate")
	ErrInvalidThermalState        = errors.New("invalid thermal state")
	ErrNoGlassTemperatureSolution = errors.New("no glass temperature solution")
	ErrConvergenceFailure         = errors.New("convergence failure")
)
