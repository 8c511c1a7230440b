package calculator

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"ptc/model"
)

// calculator 的接口定义

type Calculator interface {
	// 获取CalcHub
	GetCalcHub() *CalcHub

	// 设置计算参数
	SetInputs(in model.Inputs)
	SetOptions(opts Options)
	Set(param string, value float64) error
	Inputs() model.Inputs

	// 运行
	Run() (model.Result, error)

	// 以当前参数为基准做参数扫描，每个点的结果同时推送到 CalcHub
	Sweep(ctx context.Context, param string, values []float64) ([]model.SweepPoint, error)
}

type receiverCalculator struct {
	mu      sync.Mutex // 保护 inputs/opts 在多个请求间的并发访问
	inputs  model.Inputs
	opts    Options
	workers int

	calcHub *CalcHub
}

func NewCalculator(cfg Config) Calculator {
	return &receiverCalculator{
		inputs:  cfg.Inputs,
		opts:    cfg.Options,
		workers: cfg.Workers,
		calcHub: NewCalcHub(),
	}
}

func (c *receiverCalculator) GetCalcHub() *CalcHub {
	return c.calcHub
}

func (c *receiverCalculator) SetInputs(in model.Inputs) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputs = in
	log.WithFields(inputFields(in)).Info("设置计算参数")
}

func (c *receiverCalculator) SetOptions(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts = opts
}

func (c *receiverCalculator) Set(param string, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := SetParam(&c.inputs, param, value); err != nil {
		return err
	}
	log.WithField(param, value).Info("设置计算参数")
	return nil
}

func (c *receiverCalculator) Inputs() model.Inputs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputs
}

func (c *receiverCalculator) snapshot() (model.Inputs, Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputs, c.opts
}

func (c *receiverCalculator) Run() (model.Result, error) {
	in, opts := c.snapshot()
	log.WithFields(inputFields(in)).Debug("开始计算")

	result, err := Evaluate(in, opts)
	if err != nil {
		log.WithError(err).Error("计算失败")
		return model.Result{}, err
	}
	log.WithFields(log.Fields{
		"GlassTemperature":  result.GlassTemperature,
		"Iterations":        result.Iterations,
		"LossCoefficient":   result.LossCoefficient,
		"EfficiencyFactor":  result.EfficiencyFactor,
		"HeatRemovalFactor": result.HeatRemovalFactor,
		"UsefulGain":        result.UsefulGain,
		"OutletTemperature": result.OutletTemperature,
	}).Info("计算完成")
	return result, nil
}

func (c *receiverCalculator) Sweep(ctx context.Context, param string, values []float64) ([]model.SweepPoint, error) {
	in, opts := c.snapshot()
	return Sweep(ctx, in, opts, param, values, c.workers, c.calcHub)
}

func inputFields(in model.Inputs) log.Fields {
	return log.Fields{
		"DNI":                 in.DNI,
		"AmbientTemperature":  in.AmbientTemperature,
		"WindSpeed":           in.WindSpeed,
		"ReceiverTemperature": in.ReceiverTemperature,
		"InletTemperature":    in.InletTemperature,
		"MassFlowRate":        in.MassFlowRate,
	}
}
