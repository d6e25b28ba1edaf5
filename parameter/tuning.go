package parameter

import "time"

// Tuning groups every runtime-adjustable value; config files override the defaults field by field
type Tuning struct {
	Steering   Steering   `mapstructure:"steering"`
	Traction   Traction   `mapstructure:"traction"`
	Damping    Damping    `mapstructure:"damping"`
	Stabilizer Stabilizer `mapstructure:"stabilizer"`
	Drive      Drive      `mapstructure:"drive"`
	Smoke      Smoke      `mapstructure:"smoke"`
	Input      Input      `mapstructure:"input"`
	Body       Body       `mapstructure:"body"`
}

type Steering struct {
	MaxSteerAngle float64 `mapstructure:"maxSteerAngle"`
}

type Traction struct {
	Base        float64 `mapstructure:"base"`
	SlipLoss    float64 `mapstructure:"slipLoss"`
	TractionMin float64 `mapstructure:"tractionMin"`
	TractionMax float64 `mapstructure:"tractionMax"`
}

type Damping struct {
	Base     float64 `mapstructure:"base"`
	Span     float64 `mapstructure:"span"`
	SpeedRef float64 `mapstructure:"speedRef"`
}

type Stabilizer struct {
	MaxDirectionDiff    float64 `mapstructure:"maxDirectionDiff"`
	MaxSlipAngle        float64 `mapstructure:"maxSlipAngle"`
	MaxAngularVelocity  float64 `mapstructure:"maxAngularVelocity"`
	MaxSteerInput       float64 `mapstructure:"maxSteerInput"`
	MinSpeed            float64 `mapstructure:"minSpeed"`
	DampingFactor       float64 `mapstructure:"dampingFactor"`
	MinCorrectSpeed     float64 `mapstructure:"minCorrectSpeed"`
	SnapDirectionDiff   float64 `mapstructure:"snapDirectionDiff"`
	ConvergenceBase     float64 `mapstructure:"convergenceBase"`
	ConvergenceSpeedRef float64 `mapstructure:"convergenceSpeedRef"`
	ConvergenceMaxBoost float64 `mapstructure:"convergenceMaxBoost"`
}

type Drive struct {
	ForceMagnitude   float64 `mapstructure:"forceMagnitude"`
	ReverseRatio     float64 `mapstructure:"reverseRatio"`
	ReverseThreshold float64 `mapstructure:"reverseThreshold"`
	BrakeFactor      float64 `mapstructure:"brakeFactor"`
	IdleFactor       float64 `mapstructure:"idleFactor"`
}

type Smoke struct {
	SlipThreshold float64       `mapstructure:"slipThreshold"`
	MinSpeed      float64       `mapstructure:"minSpeed"`
	Interval      time.Duration `mapstructure:"interval"`
	MaxParticles  int           `mapstructure:"maxParticles"`
	StartSize     float64       `mapstructure:"startSize"`
	MaxSize       float64       `mapstructure:"maxSize"`
	MaxAlpha      float64       `mapstructure:"maxAlpha"`
	ExpandTime    time.Duration `mapstructure:"expandTime"`
	Lifetime      time.Duration `mapstructure:"lifetime"`
	BackOffset    float64       `mapstructure:"backOffset"`
}

type Input struct {
	DeadZone    float64 `mapstructure:"deadZone"`
	SteerAxis   int     `mapstructure:"steerAxis"`
	AccelButton int     `mapstructure:"accelButton"`
	BrakeButton int     `mapstructure:"brakeButton"`
}

type Body struct {
	Mass        float64 `mapstructure:"mass"`
	FrictionAir float64 `mapstructure:"frictionAir"`
	Width       float64 `mapstructure:"width"`
	Length      float64 `mapstructure:"length"`
}

// DefaultTuning returns the shipped handling model
func DefaultTuning() Tuning {
	return Tuning{
		Steering: Steering{MaxSteerAngle: MaxSteerAngle},
		Traction: DefaultTraction(),
		Damping: Damping{
			Base:     AngularDampingBase,
			Span:     AngularDampingSpan,
			SpeedRef: AngularDampingSpeedRef,
		},
		Stabilizer: DefaultStabilizer(),
		Drive:      DefaultDrive(),
		Smoke:      DefaultSmoke(),
		Input:      DefaultInput(),
		Body: Body{
			Mass:        BodyMass,
			FrictionAir: BodyFrictionAir,
			Width:       BodyWidth,
			Length:      BodyLength,
		},
	}
}

func DefaultTraction() Traction {
	return Traction{
		Base:        TractionBase,
		SlipLoss:    TractionSlipLoss,
		TractionMin: TractionMin,
		TractionMax: TractionMax,
	}
}

func DefaultStabilizer() Stabilizer {
	return Stabilizer{
		MaxDirectionDiff:    StraightMaxDirectionDiff,
		MaxSlipAngle:        StraightMaxSlipAngle,
		MaxAngularVelocity:  StraightMaxAngularVel,
		MaxSteerInput:       StraightMaxSteerInput,
		MinSpeed:            StraightMinSpeed,
		DampingFactor:       StraightDampingFactor,
		MinCorrectSpeed:     StraightMinCorrectSpeed,
		SnapDirectionDiff:   StraightSnapDirectionDiff,
		ConvergenceBase:     StraightConvergenceBase,
		ConvergenceSpeedRef: StraightConvergenceSpeedRef,
		ConvergenceMaxBoost: StraightConvergenceMaxBoost,
	}
}

func DefaultDrive() Drive {
	return Drive{
		ForceMagnitude:   DriveForceMagnitude,
		ReverseRatio:     ReverseForceRatio,
		ReverseThreshold: ReverseSpeedThreshold,
		BrakeFactor:      BrakeVelocityFactor,
		IdleFactor:       IdleVelocityFactor,
	}
}

func DefaultSmoke() Smoke {
	return Smoke{
		SlipThreshold: SmokeSlipThreshold,
		MinSpeed:      SmokeMinSpeed,
		Interval:      SmokeInterval,
		MaxParticles:  SmokeMaxParticles,
		StartSize:     SmokeStartSize,
		MaxSize:       SmokeMaxSize,
		MaxAlpha:      SmokeMaxAlpha,
		ExpandTime:    SmokeExpandTime,
		Lifetime:      SmokeLifetime,
		BackOffset:    SmokeBackOffset,
	}
}

func DefaultInput() Input {
	return Input{
		DeadZone:    AxisDeadZone,
		SteerAxis:   SteerAxis,
		AccelButton: AccelButton,
		BrakeButton: BrakeButton,
	}
}
