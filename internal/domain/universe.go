package domain

// DefaultUniverse returns the built-in trading-pair universe, deduplicated
// and in scan order. The order matters operationally: limited scans cover
// a prefix of this list, so the most liquid pairs come first.
func DefaultUniverse() []TradingPair {
	pairs := make([]TradingPair, 0, len(defaultPairSymbols))
	for _, sym := range defaultPairSymbols {
		p, err := ParsePair(sym)
		if err != nil {
			continue
		}
		pairs = append(pairs, p)
	}
	return DedupePairs(pairs)
}

var defaultPairSymbols = []string{
	// BTC
	"BTC/USDT", "BTC/USD", "BTC/EUR", "BTC/GBP", "BTC/BUSD", "BTC/USDC", "BTC/ETH",
	// ETH
	"ETH/USDT", "ETH/USD", "ETH/EUR", "ETH/BTC", "ETH/BUSD", "ETH/USDC",
	// Major alts
	"BNB/USDT", "BNB/BTC", "BNB/USD", "BNB/ETH",
	"SOL/USDT", "SOL/BTC", "SOL/USD", "SOL/ETH",
	"ADA/USDT", "ADA/BTC", "ADA/USD", "ADA/ETH",
	"XRP/USDT", "XRP/BTC", "XRP/USD", "XRP/ETH",
	"DOT/USDT", "DOT/BTC", "DOT/USD", "DOT/ETH",
	"DOGE/USDT", "DOGE/BTC", "DOGE/USD", "DOGE/ETH",
	"MATIC/USDT", "MATIC/BTC", "MATIC/USD", "MATIC/ETH",
	"AVAX/USDT", "AVAX/BTC", "AVAX/USD", "AVAX/ETH",
	"LINK/USDT", "LINK/BTC", "LINK/USD", "LINK/ETH",
	"UNI/USDT", "UNI/BTC", "UNI/USD", "UNI/ETH",
	"ATOM/USDT", "ATOM/BTC", "ATOM/USD", "ATOM/ETH",
	"LTC/USDT", "LTC/BTC", "LTC/USD", "LTC/ETH",
	"BCH/USDT", "BCH/BTC", "BCH/USD", "BCH/ETH",
	"XLM/USDT", "XLM/BTC", "XLM/USD", "XLM/ETH",
	"ALGO/USDT", "ALGO/BTC", "ALGO/USD", "ALGO/ETH",
	"VET/USDT", "VET/BTC", "VET/USD", "VET/ETH",
	"ICP/USDT", "ICP/BTC", "ICP/USD", "ICP/ETH",
	"FIL/USDT", "FIL/BTC", "FIL/USD", "FIL/ETH",
	"TRX/USDT", "TRX/BTC", "TRX/USD", "TRX/ETH",
	"ETC/USDT", "ETC/BTC", "ETC/USD", "ETC/ETH",
	"EOS/USDT", "EOS/BTC", "EOS/USD", "EOS/ETH",
	// DeFi
	"AAVE/USDT", "AAVE/BTC", "AAVE/USD", "AAVE/ETH",
	"MKR/USDT", "MKR/BTC", "MKR/USD", "MKR/ETH",
	"COMP/USDT", "COMP/BTC", "COMP/USD", "COMP/ETH",
	"SUSHI/USDT", "SUSHI/BTC", "SUSHI/USD", "SUSHI/ETH",
	"SNX/USDT", "SNX/BTC", "SNX/USD", "SNX/ETH",
	"YFI/USDT", "YFI/BTC", "YFI/USD", "YFI/ETH",
	"CRV/USDT", "CRV/BTC", "CRV/USD", "CRV/ETH",
	"1INCH/USDT", "1INCH/BTC", "1INCH/USD", "1INCH/ETH",
	"GRT/USDT", "GRT/BTC", "GRT/USD", "GRT/ETH",
	// Layer 1
	"NEAR/USDT", "NEAR/BTC", "NEAR/USD", "NEAR/ETH",
	"FTM/USDT", "FTM/BTC", "FTM/USD", "FTM/ETH",
	"HBAR/USDT", "HBAR/BTC", "HBAR/USD", "HBAR/ETH",
	"FLOW/USDT", "FLOW/BTC", "FLOW/USD", "FLOW/ETH",
	"EGLD/USDT", "EGLD/BTC", "EGLD/USD", "EGLD/ETH",
	"ZIL/USDT", "ZIL/BTC", "ZIL/USD", "ZIL/ETH",
	"XTZ/USDT", "XTZ/BTC", "XTZ/USD", "XTZ/ETH",
	"ZEC/USDT", "ZEC/BTC", "ZEC/USD", "ZEC/ETH",
	"DASH/USDT", "DASH/BTC", "DASH/USD", "DASH/ETH",
	"WAVES/USDT", "WAVES/BTC", "WAVES/USD", "WAVES/ETH",
	"IOTA/USDT", "IOTA/BTC", "IOTA/USD", "IOTA/ETH",
	"NEO/USDT", "NEO/BTC", "NEO/USD", "NEO/ETH",
	"QTUM/USDT", "QTUM/BTC", "QTUM/USD", "QTUM/ETH",
	"ONT/USDT", "ONT/BTC", "ONT/USD", "ONT/ETH",
	"ZRX/USDT", "ZRX/BTC", "ZRX/USD", "ZRX/ETH",
	"BAT/USDT", "BAT/BTC", "BAT/USD", "BAT/ETH",
	"OMG/USDT", "OMG/BTC", "OMG/USD", "OMG/ETH",
	"KSM/USDT", "KSM/BTC", "KSM/USD", "KSM/ETH",
	// NFT and gaming
	"SAND/USDT", "SAND/BTC", "SAND/USD", "SAND/ETH",
	"MANA/USDT", "MANA/BTC", "MANA/USD", "MANA/ETH",
	"AXS/USDT", "AXS/BTC", "AXS/USD", "AXS/ETH",
	"THETA/USDT", "THETA/BTC", "THETA/USD", "THETA/ETH",
	"ENJ/USDT", "ENJ/BTC", "ENJ/USD", "ENJ/ETH",
	"CHZ/USDT", "CHZ/BTC", "CHZ/USD", "CHZ/ETH",
	"GALA/USDT", "GALA/BTC", "GALA/USD", "GALA/ETH",
	"APE/USDT", "APE/BTC", "APE/USD", "APE/ETH",
	"GMT/USDT", "GMT/BTC", "GMT/USD", "GMT/ETH",
	// Layer 2
	"OP/USDT", "OP/BTC", "OP/USD", "OP/ETH",
	"ARB/USDT", "ARB/BTC", "ARB/USD", "ARB/ETH",
	// Newer listings
	"APT/USDT", "APT/BTC", "APT/USD", "APT/ETH",
	"INJ/USDT", "INJ/BTC", "INJ/USD", "INJ/ETH",
	"SUI/USDT", "SUI/BTC", "SUI/USD", "SUI/ETH",
	"TIA/USDT", "TIA/BTC", "TIA/USD", "TIA/ETH",
	"SEI/USDT", "SEI/BTC", "SEI/USD", "SEI/ETH",
	"BLUR/USDT", "BLUR/BTC", "BLUR/USD", "BLUR/ETH",
	"JTO/USDT", "JTO/BTC", "JTO/USD", "JTO/ETH",
	"WLD/USDT", "WLD/BTC", "WLD/USD", "WLD/ETH",
	"PYTH/USDT", "PYTH/BTC", "PYTH/USD", "PYTH/ETH",
	// Memecoins
	"PEPE/USDT", "PEPE/BTC", "PEPE/USD", "PEPE/ETH",
	"FLOKI/USDT", "FLOKI/BTC", "FLOKI/USD", "FLOKI/ETH",
	"SHIB/USDT", "SHIB/BTC", "SHIB/USD", "SHIB/ETH",
	"BONK/USDT", "BONK/BTC", "BONK/USD", "BONK/ETH",
	// Additional coverage
	"ROSE/USDT", "ROSE/BTC", "ROSE/USD", "ROSE/ETH",
	"CELO/USDT", "CELO/BTC", "CELO/USD", "CELO/ETH",
	"KLAY/USDT", "KLAY/BTC", "KLAY/USD", "KLAY/ETH",
	"LUNA/USDT", "LUNA/BTC", "LUNA/USD", "LUNA/ETH",
	"RUNE/USDT", "RUNE/BTC", "RUNE/USD", "RUNE/ETH",
	"CAKE/USDT", "CAKE/BTC", "CAKE/USD", "CAKE/ETH",
	"BAKE/USDT", "BAKE/BTC", "BAKE/USD", "BAKE/ETH",
	"SFP/USDT", "SFP/BTC", "SFP/USD", "SFP/ETH",
	"DYDX/USDT", "DYDX/BTC", "DYDX/USD", "DYDX/ETH",
	"ENS/USDT", "ENS/BTC", "ENS/USD", "ENS/ETH",
	"IMX/USDT", "IMX/BTC", "IMX/USD", "IMX/ETH",
	"LRC/USDT", "LRC/BTC", "LRC/USD", "LRC/ETH",
	"RNDR/USDT", "RNDR/BTC", "RNDR/USD", "RNDR/ETH",
	"STX/USDT", "STX/BTC", "STX/USD", "STX/ETH",
	"QNT/USDT", "QNT/BTC", "QNT/USD", "QNT/ETH",
	"TON/USDT", "TON/BTC", "TON/USD", "TON/ETH",
	"XMR/USDT", "XMR/BTC", "XMR/USD", "XMR/ETH",
	"FET/USDT", "FET/BTC", "FET/USD", "FET/ETH",
	"AGIX/USDT", "AGIX/BTC", "AGIX/USD", "AGIX/ETH",
	"OCEAN/USDT", "OCEAN/BTC", "OCEAN/USD", "OCEAN/ETH",
	// Stablecoin pairs
	"USDC/USDT", "USDC/USD", "USDC/EUR",
	"BUSD/USDT", "BUSD/USD", "BUSD/EUR",
	"DAI/USDT", "DAI/USD", "DAI/EUR",
	"TUSD/USDT", "TUSD/USD",
	"USDP/USDT", "USDP/USD",
	// Recent tokens
	"ORDI/USDT", "ORDI/BTC", "ORDI/USD",
	"SATS/USDT", "SATS/BTC", "SATS/USD",
	"1000SATS/USDT", "1000SATS/BTC",
	"WIF/USDT", "WIF/BTC", "WIF/USD",
	"POPCAT/USDT", "POPCAT/BTC",
	"MYRO/USDT", "MYRO/BTC",
	"JUP/USDT", "JUP/BTC", "JUP/USD",
}
