package consts

// 已注册目标程序的名称，配置文件 decoder.programs 使用同一组名字
const (
	ProgramRaydiumV4     = "RaydiumV4"
	ProgramRaydiumCPMM   = "RaydiumCPMM"
	ProgramPumpfun       = "Pumpfun"
	ProgramPumpfunAMM    = "PumpfunAMM"
	ProgramMeteoraDLMM   = "MeteoraDLMM"
	ProgramOrcaWhirlpool = "OrcaWhirlpool"
	ProgramSPLToken      = "SPLToken"
	ProgramToken2022     = "Token2022"
)
