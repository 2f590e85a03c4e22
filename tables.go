package ansipal

// Static palette data, derived from the xterm palette geometry and the C2
// sRGB->Oklab conversion; see cmd/gentables for the derivation. The RGB,
// srgbToLinear, grey and exact-match tables are exactly what cmd/gentables
// emits; lab256Rows and lab88Rows differ from its output in the lowest
// bits of many entries. Values are float32 because the search and
// cache paths never need more precision than the terminal's own 8-bit
// channels can express.

// labRow packs eight palette entries' Oklab coordinates in struct-of-arrays
// layout so a search kernel can sweep one component at a time across a full
// row without crossing a cache line per color. Rows are not padded here:
// both palette sizes this package searches (240 and 72 colors) divide
// evenly by 8, so no +Inf sentinel lanes are needed.
type labRow struct {
	l [8]float32
	a [8]float32
	b [8]float32
}

// exactEntry is one row of a sorted (by key) reverse RGB->index table used
// for the exact-match precheck. key is the 24-bit 0xRRGGBB triple.
type exactEntry struct {
	key uint32
	idx uint8
}

// ansi16RGB holds the classic 16 named ANSI colors (indices 0-15), in the
// common xterm default rendering. These are never palette-search targets
// (search only ranges over indices 16-255/16-87). Their RGB keys are folded
// into exact256/exact88, which the exact-match precheck reads; nothing in
// the package reads this table directly.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0}, {0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0}, {92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// ansi256RGB holds the 240 searchable entries of the xterm 256-color
// palette: the 6x6x6 color cube (indices 16-231) followed by the 24-step
// grey ramp (indices 232-255). Index i here corresponds to palette index
// i+16.
var ansi256RGB = [240][3]uint8{
	{0, 0, 0}, {0, 0, 95}, {0, 0, 135}, {0, 0, 175}, {0, 0, 215}, {0, 0, 255}, {0, 95, 0}, {0, 95, 95},
	{0, 95, 135}, {0, 95, 175}, {0, 95, 215}, {0, 95, 255}, {0, 135, 0}, {0, 135, 95}, {0, 135, 135}, {0, 135, 175},
	{0, 135, 215}, {0, 135, 255}, {0, 175, 0}, {0, 175, 95}, {0, 175, 135}, {0, 175, 175}, {0, 175, 215}, {0, 175, 255},
	{0, 215, 0}, {0, 215, 95}, {0, 215, 135}, {0, 215, 175}, {0, 215, 215}, {0, 215, 255}, {0, 255, 0}, {0, 255, 95},
	{0, 255, 135}, {0, 255, 175}, {0, 255, 215}, {0, 255, 255}, {95, 0, 0}, {95, 0, 95}, {95, 0, 135}, {95, 0, 175},
	{95, 0, 215}, {95, 0, 255}, {95, 95, 0}, {95, 95, 95}, {95, 95, 135}, {95, 95, 175}, {95, 95, 215}, {95, 95, 255},
	{95, 135, 0}, {95, 135, 95}, {95, 135, 135}, {95, 135, 175}, {95, 135, 215}, {95, 135, 255}, {95, 175, 0}, {95, 175, 95},
	{95, 175, 135}, {95, 175, 175}, {95, 175, 215}, {95, 175, 255}, {95, 215, 0}, {95, 215, 95}, {95, 215, 135}, {95, 215, 175},
	{95, 215, 215}, {95, 215, 255}, {95, 255, 0}, {95, 255, 95}, {95, 255, 135}, {95, 255, 175}, {95, 255, 215}, {95, 255, 255},
	{135, 0, 0}, {135, 0, 95}, {135, 0, 135}, {135, 0, 175}, {135, 0, 215}, {135, 0, 255}, {135, 95, 0}, {135, 95, 95},
	{135, 95, 135}, {135, 95, 175}, {135, 95, 215}, {135, 95, 255}, {135, 135, 0}, {135, 135, 95}, {135, 135, 135}, {135, 135, 175},
	{135, 135, 215}, {135, 135, 255}, {135, 175, 0}, {135, 175, 95}, {135, 175, 135}, {135, 175, 175}, {135, 175, 215}, {135, 175, 255},
	{135, 215, 0}, {135, 215, 95}, {135, 215, 135}, {135, 215, 175}, {135, 215, 215}, {135, 215, 255}, {135, 255, 0}, {135, 255, 95},
	{135, 255, 135}, {135, 255, 175}, {135, 255, 215}, {135, 255, 255}, {175, 0, 0}, {175, 0, 95}, {175, 0, 135}, {175, 0, 175},
	{175, 0, 215}, {175, 0, 255}, {175, 95, 0}, {175, 95, 95}, {175, 95, 135}, {175, 95, 175}, {175, 95, 215}, {175, 95, 255},
	{175, 135, 0}, {175, 135, 95}, {175, 135, 135}, {175, 135, 175}, {175, 135, 215}, {175, 135, 255}, {175, 175, 0}, {175, 175, 95},
	{175, 175, 135}, {175, 175, 175}, {175, 175, 215}, {175, 175, 255}, {175, 215, 0}, {175, 215, 95}, {175, 215, 135}, {175, 215, 175},
	{175, 215, 215}, {175, 215, 255}, {175, 255, 0}, {175, 255, 95}, {175, 255, 135}, {175, 255, 175}, {175, 255, 215}, {175, 255, 255},
	{215, 0, 0}, {215, 0, 95}, {215, 0, 135}, {215, 0, 175}, {215, 0, 215}, {215, 0, 255}, {215, 95, 0}, {215, 95, 95},
	{215, 95, 135}, {215, 95, 175}, {215, 95, 215}, {215, 95, 255}, {215, 135, 0}, {215, 135, 95}, {215, 135, 135}, {215, 135, 175},
	{215, 135, 215}, {215, 135, 255}, {215, 175, 0}, {215, 175, 95}, {215, 175, 135}, {215, 175, 175}, {215, 175, 215}, {215, 175, 255},
	{215, 215, 0}, {215, 215, 95}, {215, 215, 135}, {215, 215, 175}, {215, 215, 215}, {215, 215, 255}, {215, 255, 0}, {215, 255, 95},
	{215, 255, 135}, {215, 255, 175}, {215, 255, 215}, {215, 255, 255}, {255, 0, 0}, {255, 0, 95}, {255, 0, 135}, {255, 0, 175},
	{255, 0, 215}, {255, 0, 255}, {255, 95, 0}, {255, 95, 95}, {255, 95, 135}, {255, 95, 175}, {255, 95, 215}, {255, 95, 255},
	{255, 135, 0}, {255, 135, 95}, {255, 135, 135}, {255, 135, 175}, {255, 135, 215}, {255, 135, 255}, {255, 175, 0}, {255, 175, 95},
	{255, 175, 135}, {255, 175, 175}, {255, 175, 215}, {255, 175, 255}, {255, 215, 0}, {255, 215, 95}, {255, 215, 135}, {255, 215, 175},
	{255, 215, 215}, {255, 215, 255}, {255, 255, 0}, {255, 255, 95}, {255, 255, 135}, {255, 255, 175}, {255, 255, 215}, {255, 255, 255},
	{8, 8, 8}, {18, 18, 18}, {28, 28, 28}, {38, 38, 38}, {48, 48, 48}, {58, 58, 58}, {68, 68, 68}, {78, 78, 78},
	{88, 88, 88}, {98, 98, 98}, {108, 108, 108}, {118, 118, 118}, {128, 128, 128}, {138, 138, 138}, {148, 148, 148}, {158, 158, 158},
	{168, 168, 168}, {178, 178, 178}, {188, 188, 188}, {198, 198, 198}, {208, 208, 208}, {218, 218, 218}, {228, 228, 228}, {238, 238, 238},
}

// ansi88RGB holds the 72 searchable entries of the xterm 88-color palette:
// the 4x4x4 color cube (indices 16-79) followed by the 8-step grey ramp
// (indices 80-87). Index i here corresponds to palette index i+16.
var ansi88RGB = [72][3]uint8{
	{0, 0, 0}, {0, 0, 139}, {0, 0, 205}, {0, 0, 255}, {0, 139, 0}, {0, 139, 139}, {0, 139, 205}, {0, 139, 255},
	{0, 205, 0}, {0, 205, 139}, {0, 205, 205}, {0, 205, 255}, {0, 255, 0}, {0, 255, 139}, {0, 255, 205}, {0, 255, 255},
	{139, 0, 0}, {139, 0, 139}, {139, 0, 205}, {139, 0, 255}, {139, 139, 0}, {139, 139, 139}, {139, 139, 205}, {139, 139, 255},
	{139, 205, 0}, {139, 205, 139}, {139, 205, 205}, {139, 205, 255}, {139, 255, 0}, {139, 255, 139}, {139, 255, 205}, {139, 255, 255},
	{205, 0, 0}, {205, 0, 139}, {205, 0, 205}, {205, 0, 255}, {205, 139, 0}, {205, 139, 139}, {205, 139, 205}, {205, 139, 255},
	{205, 205, 0}, {205, 205, 139}, {205, 205, 205}, {205, 205, 255}, {205, 255, 0}, {205, 255, 139}, {205, 255, 205}, {205, 255, 255},
	{255, 0, 0}, {255, 0, 139}, {255, 0, 205}, {255, 0, 255}, {255, 139, 0}, {255, 139, 139}, {255, 139, 205}, {255, 139, 255},
	{255, 205, 0}, {255, 205, 139}, {255, 205, 205}, {255, 205, 255}, {255, 255, 0}, {255, 255, 139}, {255, 255, 205}, {255, 255, 255},
	{46, 46, 46}, {92, 92, 92}, {115, 115, 115}, {139, 139, 139}, {162, 162, 162}, {185, 185, 185}, {208, 208, 208}, {231, 231, 231},
}

// greyToAnsi256 maps an 8-bit grey level r==g==b to its nearest 256-palette
// index, for the monochrome precheck shortcut.
var greyToAnsi256 = [256]uint8{
	16, 16, 232, 232, 232, 232, 232, 232, 232, 232, 232, 232, 232, 233, 233, 233,
	233, 233, 233, 233, 233, 233, 233, 234, 234, 234, 234, 234, 234, 234, 234, 234,
	234, 235, 235, 235, 235, 235, 235, 235, 235, 235, 235, 236, 236, 236, 236, 236,
	236, 236, 236, 236, 236, 237, 237, 237, 237, 237, 237, 237, 237, 237, 237, 238,
	238, 238, 238, 238, 238, 238, 238, 238, 238, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 240, 240, 240, 240, 240, 240, 240, 240, 240, 59, 59, 59, 59,
	59, 241, 241, 241, 241, 241, 241, 242, 242, 242, 242, 242, 242, 242, 242, 242,
	242, 243, 243, 243, 243, 243, 243, 243, 243, 243, 243, 244, 244, 244, 244, 244,
	244, 244, 244, 244, 102, 102, 102, 102, 102, 245, 245, 245, 245, 245, 245, 246,
	246, 246, 246, 246, 246, 246, 246, 246, 246, 247, 247, 247, 247, 247, 247, 247,
	247, 247, 247, 248, 248, 248, 248, 248, 248, 248, 248, 248, 145, 145, 145, 145,
	145, 249, 249, 249, 249, 249, 249, 250, 250, 250, 250, 250, 250, 250, 250, 250,
	250, 251, 251, 251, 251, 251, 251, 251, 251, 251, 251, 252, 252, 252, 252, 252,
	252, 252, 252, 252, 188, 188, 188, 188, 188, 253, 253, 253, 253, 253, 253, 254,
	254, 254, 254, 254, 254, 254, 254, 254, 254, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 231, 231, 231, 231, 231, 231, 231, 231, 231,
}

// greyToAnsi88 is the 88-color analogue of greyToAnsi256.
var greyToAnsi88 = [256]uint8{
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 80, 80, 80, 80,
	80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80,
	80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80,
	80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80,
	80, 80, 80, 80, 80, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81,
	81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81, 81,
	81, 81, 81, 81, 81, 81, 81, 81, 82, 82, 82, 82, 82, 82, 82, 82,
	82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 82, 37,
	37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37,
	37, 37, 37, 37, 37, 37, 37, 84, 84, 84, 84, 84, 84, 84, 84, 84,
	84, 84, 84, 84, 84, 84, 84, 84, 84, 84, 84, 84, 84, 84, 85, 85,
	85, 85, 85, 85, 85, 85, 85, 85, 85, 85, 85, 85, 85, 85, 85, 85,
	85, 85, 85, 58, 58, 58, 58, 58, 58, 58, 58, 58, 58, 58, 58, 86,
	86, 86, 86, 86, 86, 86, 86, 86, 86, 86, 86, 86, 87, 87, 87, 87,
	87, 87, 87, 87, 87, 87, 87, 87, 87, 87, 87, 87, 87, 87, 87, 87,
	87, 87, 87, 79, 79, 79, 79, 79, 79, 79, 79, 79, 79, 79, 79, 79,
}

// lab256Rows is ansi256RGB's Oklab coordinates, regrouped into 30 rows of 8
// for the search kernels (240/8 = 30 exactly, no padding lanes).
var lab256Rows = [30]labRow{
	{
		l: [8]float32{0.0, 0.2194514125585556, 0.28178951144218445, 0.3408261239528656, 0.3973962962627411, 0.45201370120048523, 0.4206540286540985, 0.43956881761550903},
		a: [8]float32{0.0, -0.01575777307152748, -0.02023399993777275, -0.024473115801811218, -0.02853512205183506, -0.03245693817734718, -0.11355175822973251, -0.07255461812019348},
		b: [8]float32{0.0, -0.1512460559606552, -0.194209486246109, -0.23489761352539062, -0.2738858163356781, -0.31152817606925964, 0.08714602142572403, -0.019127709791064262},
	},
	{
		l: [8]float32{0.4590843915939331, 0.4849068820476532, 0.5158243179321289, 0.5505865812301636, 0.5401464104652405, 0.5518333911895752, 0.5644342303276062, 0.5819157361984253},
		a: [8]float32{-0.05526045709848404, -0.044124994426965714, -0.038223929703235626, -0.03601785749197006, -0.1458076685667038, -0.11317668110132217, -0.09316471964120865, -0.07614593952894211},
		b: [8]float32{-0.08179701119661331, -0.14114543795585632, -0.1958111971616745, -0.2460910528898239, 0.11190098524093628, 0.032739732414484024, -0.02456117980182171, -0.08368098735809326},
	},
	{
		l: [8]float32{0.6039326786994934, 0.6299222111701965, 0.6533104181289673, 0.6613503098487854, 0.6701719164848328, 0.6826866269111633, 0.6988795399665833, 0.7185602784156799},
		a: [8]float32{-0.06338243186473846, -0.05471767485141754, -0.1763552725315094, -0.15079426765441895, -0.1316404491662979, -0.11268332600593567, -0.09604176133871078, -0.08255527913570404},
		b: [8]float32{-0.1410478949546814, -0.1953858733177185, 0.13534493744373322, 0.0751708596944809, 0.02548840083181858, -0.029706910252571106, -0.08616801351308823, -0.1416313648223877},
	},
	{
		l: [8]float32{0.7617465257644653, 0.7676761746406555, 0.7742338180541992, 0.7836422920227051, 0.7959986329078674, 0.8112801313400269, 0.8664396405220032, 0.8710287809371948},
		a: [8]float32{-0.20562663674354553, -0.18535512685775757, -0.16822808980941772, -0.1495198905467987, -0.1313863843679428, -0.11511947214603424, -0.23388758301734924, -0.21750059723854065},
		b: [8]float32{0.15780940651893616, 0.11082984507083893, 0.06857157498598099, 0.01876622438430786, -0.03463764861226082, -0.08900453895330429, 0.17949847877025604, 0.14186258614063263},
	},
	{
		l: [8]float32{0.8761240243911743, 0.8834787607192993, 0.8932213187217712, 0.9053992629051208, 0.30487060546875, 0.3406607210636139, 0.37289610505104065, 0.4112717807292938},
		a: [8]float32{-0.20255692303180695, -0.18507938086986542, -0.16691526770591736, -0.14944395422935486, 0.10917036235332489, 0.13330121338367462, 0.12249702215194702, 0.1047535166144371},
		b: [8]float32{0.10602393001317978, 0.06181562319397926, 0.012483718805015087, -0.039398159831762314, 0.061098042875528336, -0.08212480694055557, -0.1424923986196518, -0.19547122716903687},
	},
	{
		l: [8]float32{0.45331940054893494, 0.4974435567855835, 0.46995294094085693, 0.48549723625183105, 0.501865565776825, 0.5239783525466919, 0.551028847694397, 0.582060694694519},
		a: [8]float32{0.08530323952436447, 0.0667387843132019, -0.03464950621128082, 2.7755575615628914e-17, 0.015191075392067432, 0.024147329851984978, 0.02728128619492054, 0.026062773540616035},
		b: [8]float32{-0.2430279403924942, -0.2867549657821655, 0.09640508145093918, 1.810904670662694e-08, -0.061447396874427795, -0.12134956568479538, -0.17743396759033203, -0.22943753004074097},
	},
	{
		l: [8]float32{0.5720237493515015, 0.5825555324554443, 0.5939751863479614, 0.6099264025688171, 0.6301770806312561, 0.6542841196060181, 0.6757255792617798, 0.6832829117774963},
		a: [8]float32{-0.09049344807863235, -0.061045289039611816, -0.04256691411137581, -0.02692289836704731, -0.015574932098388672, -0.008513755165040493, -0.13597342371940613, -0.11204227805137634},
		b: [8]float32{0.11784813553094864, 0.04348152130842209, -0.012224617414176464, -0.0707218274474144, -0.12817174196243286, -0.183021679520607, 0.13951317965984344, 0.0817878246307373},
	},
	{
		l: [8]float32{0.6915907263755798, 0.7034065127372742, 0.7187448740005493, 0.737456202507019, 0.7784735560417175, 0.7841702699661255, 0.7904750108718872, 0.7995302081108093},
		a: [8]float32{-0.0938892588019371, -0.07585667073726654, -0.06009044125676155, -0.04749806597828865, -0.17489705979824066, -0.15551066398620605, -0.13902290165424347, -0.12094758450984955},
		b: [8]float32{0.03334074094891548, -0.02105254866182804, -0.07714412361383438, -0.13257257640361786, 0.16091448068618774, 0.11526784300804138, 0.0738632008433342, 0.024752892553806305},
	},
	{
		l: [8]float32{0.8114398717880249, 0.8261947631835938, 0.879474401473999, 0.8839385509490967, 0.8888965845108032, 0.8960567712783813, 0.9055482149124146, 0.9174227714538574},
		a: [8]float32{-0.10341138392686844, -0.08772225677967072, -0.2096714973449707, -0.19379554688930511, -0.17926418781280518, -0.1622239053249359, -0.14448542892932892, -0.12742185592651367},
		b: [8]float32{-0.02818920463323593, -0.0823158472776413, 0.18191565573215485, 0.14505136013031006, 0.10978727787733078, 0.06611776351928711, 0.0172121562063694, -0.034377872943878174},
	},
	{
		l: [8]float32{0.3914731442928314, 0.4145115315914154, 0.43742993474006653, 0.46677759289741516, 0.500886857509613, 0.5383231043815613, 0.5142548680305481, 0.5274638533592224},
		a: [8]float32{0.14018170535564423, 0.17034825682640076, 0.17116712033748627, 0.16226035356521606, 0.14735154807567596, 0.12967270612716675, 0.0186744537204504, 0.049675632268190384},
		b: [8]float32{0.07845374941825867, -0.04226532578468323, -0.10545343160629272, -0.16319315135478973, -0.2155032604932785, -0.2633625864982605, 0.10489211976528168, 0.017076926305890083},
	},
	{
		l: [8]float32{0.5415628552436829, 0.5608928799629211, 0.584918737411499, 0.6129119992256165, 0.603449285030365, 0.6130027174949646, 0.6234091520309448, 0.6380285024642944},
		a: [8]float32{0.06461329013109207, 0.07386133819818497, 0.07713262736797333, 0.0755019262433052, -0.04449203237891197, -0.017503155395388603, -2.220446049250313e-16, 0.015011065639555454},
		b: [8]float32{-0.04263751953840256, -0.10246488451957703, -0.1594260036945343, -0.2127503901720047, 0.1237901970744133, 0.053987063467502594, 2.32531611743525e-08, -0.057689886540174484},
	},
	{
		l: [8]float32{0.6567160487174988, 0.6791269779205322, 0.6988905072212219, 0.705994725227356, 0.7138177752494812, 0.7249701619148254, 0.73949134349823, 0.7572681307792664},
		a: [8]float32{0.025852492079138756, 0.032325103878974915, -0.09849538654088974, -0.07601559162139893, -0.05870608240365982, -0.04138021543622017, -0.026206567883491516, -0.014172708615660667},
		b: [8]float32{-0.11504510790109634, -0.1702629178762436, 0.1438598930835724, 0.08859263360500336, 0.04144945368170738, -0.012053800746798515, -0.06769315153360367, -0.12302015721797943},
	},
	{
		l: [8]float32{0.7962168455123901, 0.8016819357872009, 0.8077346086502075, 0.8164367079734802, 0.8278983235359192, 0.8421229124069214, 0.8935168981552124, 0.8978524208068848},
		a: [8]float32{-0.14456571638584137, -0.12603038549423218, -0.11014550924301147, -0.09264504164457321, -0.07562249153852463, -0.06040285900235176, -0.18487229943275452, -0.16951054334640503},
		b: [8]float32{0.1642288863658905, 0.11996451020240784, 0.07946665585041046, 0.03111138753592968, -0.021313603967428207, -0.07515585422515869, 0.18453148007392883, 0.14848405122756958},
	},
	{
		l: [8]float32{0.9026690125465393, 0.9096283912658691, 0.9188602566719055, 0.9304205179214478, 0.4734891951084137, 0.4896160662174225, 0.5064735412597656, 0.5290741920471191},
		a: [8]float32{-0.15539054572582245, -0.1387796849012375, -0.12144868075847626, -0.10476276278495789, 0.1695505827665329, 0.199144184589386, 0.20740658044815063, 0.20702768862247467},
		b: [8]float32{0.1138359010219574, 0.07075121253728867, 0.022314967587590218, -0.02894747070968151, 0.0948902815580368, -0.005627725273370743, -0.0677250325679779, -0.1275465488433838},
	},
	{
		l: [8]float32{0.556512713432312, 0.5877833962440491, 0.5673051476478577, 0.5783238410949707, 0.5902268886566162, 0.6067754030227661, 0.6276702284812927, 0.6524066925048828},
		a: [8]float32{0.19929388165473938, 0.18646025657653809, 0.06971945613622665, 0.09731700271368027, 0.11238657683134079, 0.12283536046743393, 0.12760920822620392, 0.12718726694583893},
		b: [8]float32{-0.18318453431129456, -0.23460692167282104, 0.11518161743879318, 0.036917850375175476, -0.020126614719629288, -0.0791943296790123, -0.1366569846868515, -0.19118203222751617},
	},
	{
		l: [8]float32{0.6437513828277588, 0.6522332429885864, 0.6615166664123535, 0.6746392846107483, 0.691541850566864, 0.7119818329811096, 0.7298756837844849, 0.7364348769187927},
		a: [8]float32{0.005603686906397343, 0.030020687729120255, 0.04664120450615883, 0.06134721636772156, 0.07222489267587662, 0.07878994941711426, -0.05381348356604576, -0.03300817310810089},
		b: [8]float32{0.13149552047252655, 0.0672188326716423, 0.015582071617245674, -0.040827181190252304, -0.09781288355588913, -0.15329337120056152, 0.14972499012947083, 0.09760891646146774},
	},
	{
		l: [8]float32{0.7436717748641968, 0.7540172338485718, 0.7675368785858154, 0.7841581702232361, 0.8205772638320923, 0.8257472515106201, 0.8314778804779053, 0.8397275805473328},
		a: [8]float32{-0.016630811616778374, -1.1102230246251565e-16, 0.01470049750059843, 0.026378370821475983, -0.1061997339129448, -0.0887146070599556, -0.07356126606464386, -0.05673033371567726},
		b: [8]float32{0.05223200470209122, 2.8124842899046598e-08, -0.05493126064538956, -0.11002113670110703, 0.16880963742733002, 0.12638424336910248, 0.08712679147720337, 0.03983182832598686},
	},
	{
		l: [8]float32{0.850612998008728, 0.8641522526741028, 0.9131206274032593, 0.9172859191894531, 0.9219152927398682, 0.9286084175109863, 0.9374952912330627, 0.9486368894577026},
		a: [8]float32{-0.04026460647583008, -0.025509478524327278, -0.1522650122642517, -0.13756653666496277, -0.1239737793803215, -0.1079033613204956, -0.09106944501399994, -0.0748247504234314},
		b: [8]float32{-0.011842353269457817, -0.06524696946144104, 0.18820172548294067, 0.15326794981956482, 0.11947247385978699, 0.07720915228128433, 0.029443562030792236, -0.021340100094676018},
	},
	{
		l: [8]float32{0.5520787239074707, 0.5640696883201599, 0.5769367218017578, 0.5946834087371826, 0.6168896555900574, 0.6429401636123657, 0.625725269317627, 0.6348868012428284},
		a: [8]float32{0.19769248366355896, 0.22454191744327545, 0.23668095469474792, 0.242468923330307, 0.24139010906219482, 0.23445241153240204, 0.11587850749492645, 0.14033566415309906},
		b: [8]float32{0.11064013838768005, 0.026858650147914886, -0.031833466142416, -0.09144949167966843, -0.14871670305728912, -0.2026258409023285, 0.12661521136760712, 0.05775162950158119},
	},
	{
		l: [8]float32{0.6448766589164734, 0.658927857875824, 0.67691570520401, 0.6985234618186951, 0.6907872557640076, 0.6982250213623047, 0.7064010500907898, 0.7180267572402954},
		a: [8]float32{0.155448317527771, 0.16728684306144714, 0.17418354749679565, 0.1759980320930481, 0.055031441152095795, 0.07696600258350372, 0.0927729606628418, 0.10740239173173904},
		b: [8]float32{0.0041346182115375996, -0.053379178047180176, -0.11071896553039551, -0.16603191196918488, 0.14057676494121552, 0.08222398161888123, 0.033443547785282135, -0.021185850724577904},
	},
	{
		l: [8]float32{0.7331131100654602, 0.7515104413032532, 0.767540693283081, 0.7735162973403931, 0.7801224589347839, 0.7895933389663696, 0.8020181059837341, 0.8173635601997375},
		a: [8]float32{0.11875780671834946, 0.1260530650615692, -0.006118180695921183, 0.012948558665812016, 0.02838076837360859, 0.04438803717494011, 0.05880040302872658, 0.07041532546281815},
		b: [8]float32{-0.07741466909646988, -0.13290467858314514, 0.15691766142845154, 0.10840068757534027, 0.06517315655946732, 0.014583703130483627, -0.03934496268630028, -0.09399747848510742},
	},
	{
		l: [8]float32{0.851020097732544, 0.8558534979820251, 0.861216127872467, 0.8689470887184143, 0.879168689250946, 0.8919143080711365, 0.9380859136581421, 0.9420487880706787},
		a: [8]float32{-0.06274545937776566, -0.04642023518681526, -0.032065801322460175, -0.015935907140374184, 1.1102230246251565e-16, 0.014378989115357399, -0.11373136937618256, -0.09980052709579468},
		b: [8]float32{0.17457632720470428, 0.13434618711471558, 0.09662078320980072, 0.050677962601184845, 3.2792993209795895e-08, -0.05278643220663071, 0.19290359318256378, 0.15934044122695923},
	},
	{
		l: [8]float32{0.9464552998542786, 0.9528307318687439, 0.9613050818443298, 0.9719443917274475, 0.6279553771018982, 0.6372740864753723, 0.6474213004112244, 0.6616678833961487},
		a: [8]float32{-0.08681412786245346, -0.07135451585054398, -0.055061016231775284, -0.03926702216267586, 0.22486311197280884, 0.24853980541229248, 0.26229387521743774, 0.27199965715408325},
		b: [8]float32{0.12661466002464294, 0.08540129661560059, 0.03851179778575897, -0.011629248037934303, 0.12584631145000458, 0.05552102252840996, 0.001314901513978839, -0.05650396645069122},
	},
	{
		l: [8]float32{0.6798654794692993, 0.7016738653182983, 0.6872156262397766, 0.6948738694190979, 0.703281581401825, 0.7152148485183716, 0.7306640148162842, 0.7494538426399231},
		a: [8]float32{0.2760895788669586, 0.27456632256507874, 0.1572478711605072, 0.17885255813598633, 0.19371214509010315, 0.20665310323238373, 0.21563440561294556, 0.21999739110469818},
		b: [8]float32{-0.11391930282115936, -0.16915608942508698, 0.1387253850698471, 0.07846498489379883, 0.028722748160362244, -0.026535669341683388, -0.08306431770324707, -0.13860204815864563},
	},
	{
		l: [8]float32{0.7426361441612244, 0.7491250038146973, 0.7562838792800903, 0.7665156722068787, 0.7798827886581421, 0.7963107228279114, 0.8105994462966919, 0.8159961104393005},
		a: [8]float32{0.10158334672451019, 0.12121476233005524, 0.13620810210704803, 0.1508053094148636, 0.16282466053962708, 0.17121869325637817, 0.04158719256520271, 0.058954961597919464},
		b: [8]float32{0.1506669670343399, 0.098171666264534, 0.05257183685898781, 0.0001684920716797933, -0.05487287417054176, -0.11002148687839508, 0.16520673036575317, 0.12048272043466568},
	},
	{
		l: [8]float32{0.8219730854034424, 0.8305655717849731, 0.8418806195259094, 0.8559195399284363, 0.8867710828781128, 0.8912490010261536, 0.8962218761444092, 0.903401255607605},
		a: [8]float32{0.07345551997423172, 0.08889645338058472, 0.10316556692123413, 0.11496695876121521, -0.016925128176808357, -0.0017946244915947318, 0.011737712658941746, 0.02716968022286892},
		b: [8]float32{0.07967595010995865, 0.03105410374701023, -0.021566489711403847, -0.07553444802761078, 0.1813981682062149, 0.14359499514102936, 0.1076284795999527, 0.06329458206892014},
	},
	{
		l: [8]float32{0.9129135608673096, 0.9248061180114746, 0.9679827094078064, 0.9717219471931458, 0.975881814956665, 0.9819052219390869, 0.9899210333824158, 1.0},
		a: [8]float32{0.04263003170490265, 0.05674939975142479, -0.07136911898851395, -0.058264512568712234, -0.04592974856495857, -0.031115781515836716, -0.015371155925095081, -1.6653345369377348e-16},
		b: [8]float32{0.013854196295142174, -0.038115084171295166, 0.19856974482536316, 0.1665753424167633, 0.1351012885570526, 0.0951436385512352, 0.04932851344347, 3.7300001309859e-08},
	},
	{
		l: [8]float32{0.13440923392772675, 0.18220371007919312, 0.2264498621225357, 0.26861828565597534, 0.30918562412261963, 0.3484596610069275, 0.3866543173789978, 0.4239264726638794},
		a: [8]float32{0.0, 0.0, 0.0, 4.163336342344337e-17, -5.551115123125783e-17, -2.7755575615628914e-17, -1.1102230246251565e-16, 8.326672684688674e-17},
		b: [8]float32{5.013464310366089e-09, 6.7961982708197866e-09, 8.44657943588345e-09, 1.001946170475776e-08, 1.1532623744869852e-08, 1.2997545262294352e-08, 1.4422205651953846e-08, 1.5812457121455736e-08},
	},
	{
		l: [8]float32{0.46039560437202454, 0.4961555600166321, 0.5312818288803101, 0.5658363103866577, 0.5998708009719849, 0.6334289312362671, 0.6665481328964233, 0.6992607116699219},
		a: [8]float32{0.0, 0.0, -1.3877787807814457e-16, -5.551115123125783e-17, 5.551115123125783e-17, -5.551115123125783e-17, -1.1102230246251565e-16, -2.220446049250313e-16},
		b: [8]float32{1.717275566193166e-08, 1.8506602472712075e-08, 1.981681307938743e-08, 2.1105694969492106e-08, 2.237518081926737e-08, 2.3626899547934954e-08, 2.4862245595613786e-08, 2.6082425108597818e-08},
	},
	{
		l: [8]float32{0.731594979763031, 0.7635757327079773, 0.7952249050140381, 0.826562225818634, 0.8576051592826843, 0.8883696794509888, 0.9188699722290039, 0.9491192698478699},
		a: [8]float32{-1.6653345369377348e-16, 5.551115123125783e-17, -1.6653345369377348e-16, -2.7755575615628914e-16, -1.1102230246251565e-16, -5.551115123125783e-17, 5.551115123125783e-17, -3.885780586188048e-16},
		b: [8]float32{2.7288493242849654e-08, 2.8481375480282622e-08, 2.9661888945042847e-08, 3.083077260157552e-08, 3.198867304377018e-08, 3.31361889038817e-08, 3.4273849536248235e-08, 3.540214876807113e-08},
	},
}

// lab88Rows is ansi88RGB's Oklab coordinates, regrouped into 9 rows of 8
// (72/8 = 9 exactly, no padding lanes).
var lab88Rows = [9]labRow{
	{
		l: [8]float32{0.0, 0.28782427310943604, 0.38345327973365784, 0.45201370120048523, 0.5517141222953796, 0.5765220522880554, 0.607506513595581, 0.6384803056716919},
		a: [8]float32{0.0, -0.020667321979999542, -0.02753400057554245, -0.03245693817734718, -0.14893028140068054, -0.0951598510146141, -0.0693373754620552, -0.057170428335666656},
		b: [8]float32{0.0, -0.19836868345737457, -0.2642762064933777, -0.31152817606925964, 0.11429745703935623, -0.025087205693125725, -0.12136337906122208, -0.19005531072616577},
	},
	{
		l: [8]float32{0.7350199818611145, 0.7492823004722595, 0.7680702805519104, 0.7878943681716919, 0.8664396405220032, 0.8767550587654114, 0.8905579447746277, 0.9053992629051208},
		a: [8]float32{-0.19841204583644867, -0.15741604566574097, -0.12677669525146484, -0.10672426223754883, -0.23388758301734924, -0.2008902132511139, -0.1714358627796173, -0.14944395422935486},
		b: [8]float32{0.152272567152977, 0.05350738391280174, -0.0334223136305809, -0.10192401707172394, 0.17949847877025604, 0.10192311555147171, 0.025142082944512367, -0.039398159831762314},
	},
	{
		l: [8]float32{0.3998568654060364, 0.4467978775501251, 0.49743857979774475, 0.5429364442825317, 0.6163727045059204, 0.6367600560188293, 0.6627996563911438, 0.6893907189369202},
		a: [8]float32{0.14318378269672394, 0.17483289539813995, 0.1569899469614029, 0.1357191801071167, -0.04544488713145256, -1.1102230246251565e-16, 0.022596977651119232, 0.03216034546494484},
		b: [8]float32{0.08013390004634857, -0.10771181434392929, -0.19971583783626556, -0.26069140434265137, 0.12644125521183014, 2.3751150379780483e-08, -0.09467227011919022, -0.16419023275375366},
	},
	{
		l: [8]float32{0.7741167545318604, 0.7870954871177673, 0.8042806386947632, 0.8225204348564148, 0.8952279686927795, 0.9049426913261414, 0.9179676175117493, 0.9320072531700134},
		a: [8]float32{-0.12998075783252716, -0.09268341213464737, -0.0642218068242073, -0.04565238207578659, -0.1819361448287964, -0.1509876400232315, -0.12302295863628387, -0.1020733118057251},
		b: [8]float32{0.1595611870288849, 0.06636038422584534, -0.01829906739294529, -0.08609773218631744, 0.1848510056734085, 0.1103544682264328, 0.0353841707110405, -0.02828451246023178},
	},
	{
		l: [8]float32{0.532708466053009, 0.5609407424926758, 0.5952455401420593, 0.6287455558776855, 0.6860072612762451, 0.7028025388717651, 0.7246322631835938, 0.74732506275177},
		a: [8]float32{0.19075636565685272, 0.23058325052261353, 0.23292067646980286, 0.22325655817985535, 0.03663560003042221, 0.0764869973063469, 0.09884044528007507, 0.10897274315357208},
		b: [8]float32{0.10675819963216782, -0.04661994054913521, -0.14349882304668427, -0.21081970632076263, 0.13979831337928772, 0.026780007407069206, -0.06490016728639603, -0.13445962965488434},
	},
	{
		l: [8]float32{0.8211612701416016, 0.8328141570091248, 0.8483222126960754, 0.8648813962936401, 0.9313626289367676, 0.9403968453407288, 0.9525355100631714, 0.9656561613082886},
		a: [8]float32{-0.060543980449438095, -0.026747051626443863, -1.6653345369377348e-16, 0.01770668849349022, -0.12380461394786835, -0.09505228698253632, -0.0685872733592987, -0.048578787595033646},
		b: [8]float32{0.16845117509365082, 0.08169066160917282, 3.164241846320692e-08, -0.0667051151394844, 0.19163447618484497, 0.12088010460138321, 0.0482376329600811, -0.014245583675801754},
	},
	{
		l: [8]float32{0.6279553771018982, 0.6486619710922241, 0.6749619245529175, 0.7016738653182983, 0.7489475011825562, 0.76322340965271, 0.7819947600364685, 0.8017560839653015},
		a: [8]float32{0.22486311197280884, 0.26348912715911865, 0.27561160922050476, 0.27456632256507874, 0.09565353393554688, 0.13156618177890778, 0.15428029000759125, 0.16582460701465607},
		b: [8]float32{0.12584631145000458, -0.004394471645355225, -0.09972675144672394, -0.16915608942508698, 0.1520216166973114, 0.05020800605416298, -0.0379096157848835, -0.10678574442863464},
	},
	{
		l: [8]float32{0.8671522736549377, 0.8776922821998596, 0.8917761445045471, 0.906889796257019, 0.9679827094078064, 0.976397693157196, 0.9877254366874695, 1.0},
		a: [8]float32{-0.002621591091156006, 0.028367768973112106, 0.05391256883740425, 0.07126488536596298, -0.07136911898851395, -0.04453371837735176, -0.01931699365377426, -1.6653345369377348e-16},
		b: [8]float32{0.17723682522773743, 0.09641850739717484, 0.017800316214561462, -0.047607485204935074, 0.19856974482536316, 0.1314442902803421, 0.06119449809193611, 3.7300001309859e-08},
	},
	{
		l: [8]float32{0.301183819770813, 0.4747801125049591, 0.5555267930030823, 0.6367600560188293, 0.7122383713722229, 0.7857637405395508, 0.8576051592826843, 0.9279705882072449},
		a: [8]float32{-2.7755575615628914e-17, -2.7755575615628914e-17, -5.551115123125783e-17, -1.1102230246251565e-16, -1.6653345369377348e-16, -5.551115123125783e-17, -1.1102230246251565e-16, -2.220446049250313e-16},
		b: [8]float32{1.1234156716000143e-08, 1.7709298916201988e-08, 2.072114924089874e-08, 2.3751150379780483e-08, 2.6566491229118583e-08, 2.9308987237186557e-08, 3.198867304377018e-08, 3.4613304222830266e-08},
	},
}

// srgbToLinear is the exact (not approximated) sRGB EOTF applied to each of
// the 256 possible 8-bit channel values, used by C2's conversion.
// cmd/gentables computes the same values into its own linearLUT when it
// recomputes lab256Rows/lab88Rows.
var srgbToLinear = [256]float32{
	0.0, 0.0003035269910469651, 0.0006070539820939302, 0.0009105809731408954, 0.0012141079641878605, 0.0015176349552348256, 0.0018211619462817907, 0.002124688820913434,
	0.002428215928375721, 0.0027317428030073643, 0.0030352699104696512, 0.0033465358428657055, 0.0036765073891729116, 0.004024717025458813, 0.0043914420530200005, 0.004776953253895044,
	0.005181516520678997, 0.005605391692370176, 0.006048833020031452, 0.006512090563774109, 0.006995410192757845, 0.007499032188206911, 0.00802319310605526, 0.008568125776946545,
	0.009134058840572834, 0.009721217676997185, 0.01032982300966978, 0.010960093699395657, 0.011612244881689548, 0.012286487966775894, 0.012983032502233982, 0.013702083379030228,
	0.014443843625485897, 0.015208514407277107, 0.01599629409611225, 0.016807375475764275, 0.017641954123973846, 0.01850022003054619, 0.019382361322641373, 0.020288562402129173,
	0.021219009533524513, 0.022173885256052017, 0.023153366521000862, 0.024157632142305374, 0.02518685907125473, 0.026241222396492958, 0.027320891618728638, 0.028426039963960648,
	0.02955683507025242, 0.03071344457566738, 0.03189603239297867, 0.03310476616024971, 0.03433980792760849, 0.03560131415724754, 0.03688944876194, 0.0382043719291687,
	0.039546236395835876, 0.040915198624134064, 0.0423114113509655, 0.04373503103852272, 0.045186202973127365, 0.04666508734226227, 0.04817182570695877, 0.04970656707882881,
	0.05126945674419403, 0.052860647439956665, 0.05448027700185776, 0.05612849071621895, 0.05780543014407158, 0.05951123684644699, 0.061246052384376526, 0.06301001459360123,
	0.06480326503515244, 0.0666259378194809, 0.06847816705703735, 0.07036009430885315, 0.07227185368537903, 0.07421357184648514, 0.07618538290262222, 0.07818742096424103,
	0.0802198201417923, 0.08228270709514618, 0.08437620848417282, 0.08650045841932297, 0.08865558356046677, 0.09084171056747437, 0.09305896610021591, 0.09530746936798096,
	0.09758734703063965, 0.09989872574806213, 0.10224173218011856, 0.10461648553609848, 0.10702310502529144, 0.109461709856987, 0.1119324266910553, 0.11443537473678589,
	0.11697066575288773, 0.11953842639923096, 0.12213877588510513, 0.12477181851863861, 0.12743768095970154, 0.13013647496700287, 0.13286831974983215, 0.13563333451747894,
	0.1384316086769104, 0.14126329123973846, 0.1441284716129303, 0.14702726900577545, 0.14995978772640228, 0.15292614698410034, 0.15592646598815918, 0.15896083414554596,
	0.16202937066555023, 0.16513219475746155, 0.16826939582824707, 0.17144110798835754, 0.17464740574359894, 0.177888423204422, 0.18116424977779388, 0.18447498977184296,
	0.18782077729701996, 0.19120168685913086, 0.1946178376674652, 0.19806931912899017, 0.2015562504529953, 0.20507873594760895, 0.20863686501979828, 0.21223075687885284,
	0.2158605009317398, 0.21952620148658752, 0.22322796285152435, 0.22696587443351746, 0.23074005544185638, 0.2345505803823471, 0.23839756846427917, 0.24228112399578094,
	0.2462013214826584, 0.25015828013420105, 0.2541520893573761, 0.2581828534603119, 0.2622506618499756, 0.26635560393333435, 0.27049779891967773, 0.2746773064136505,
	0.2788942754268646, 0.28314873576164246, 0.28744083642959595, 0.2917706370353699, 0.2961382567882538, 0.30054378509521484, 0.3049873113632202, 0.30946892499923706,
	0.31398871541023254, 0.31854677200317383, 0.32314321398735046, 0.3277781009674072, 0.3324515223503113, 0.33716362714767456, 0.34191441535949707, 0.34670406579971313,
	0.35153260827064514, 0.35640013217926025, 0.3613067865371704, 0.366252601146698, 0.37123769521713257, 0.3762621283531189, 0.38132601976394653, 0.38642942905426025,
	0.3915724754333496, 0.3967552185058594, 0.4019777774810791, 0.40724021196365356, 0.4125426113605499, 0.41788506507873535, 0.423267662525177, 0.42869049310684204,
	0.43415364623069763, 0.43965718150138855, 0.44520118832588196, 0.4507857859134674, 0.4564110338687897, 0.46207699179649353, 0.4677838087081909, 0.47353148460388184,
	0.4793201684951782, 0.48514994978904724, 0.4910208582878113, 0.4969329833984375, 0.5028864741325378, 0.5088813304901123, 0.5149176716804504, 0.520995557308197,
	0.5271151065826416, 0.533276379108429, 0.5394794940948486, 0.5457244515419006, 0.5520114302635193, 0.5583403706550598, 0.5647115111351013, 0.5711248517036438,
	0.577580451965332, 0.5840784311294556, 0.5906188488006592, 0.5972017645835876, 0.6038273572921753, 0.6104955673217773, 0.6172065734863281, 0.6239603757858276,
	0.6307571530342102, 0.637596845626831, 0.6444796919822693, 0.6514056324958801, 0.6583748459815979, 0.6653872728347778, 0.672443151473999, 0.6795424818992615,
	0.68668532371521, 0.6938717365264893, 0.7011018991470337, 0.7083757519721985, 0.715693473815918, 0.7230551242828369, 0.7304607629776001, 0.7379103899002075,
	0.7454041838645935, 0.7529422044754028, 0.7605245113372803, 0.7681511640548706, 0.7758222222328186, 0.7835378050804138, 0.7912979125976562, 0.7991027235984802,
	0.8069522380828857, 0.8148465752601624, 0.8227857351303101, 0.8307698965072632, 0.838798999786377, 0.8468732237815857, 0.8549926280975342, 0.8631572127342224,
	0.8713670969009399, 0.8796223998069763, 0.8879231214523315, 0.8962693810462952, 0.9046611785888672, 0.9130986332893372, 0.9215818643569946, 0.9301108717918396,
	0.9386857151985168, 0.9473065137863159, 0.9559733271598816, 0.9646862745285034, 0.9734452962875366, 0.9822505712509155, 0.9911020994186401, 1.0,
}

// exact256 is ansi256RGB (plus the 16 named colors) sorted by 24-bit RGB
// key, used for the exact-match precheck. Where a key is reachable via
// more than one palette slot (e.g. an ANSI16 named color that coincides
// with a cube corner), the searchable index (>=16) wins, since that is
// the index the Oklab search itself would have returned.
var exact256 = [249]exactEntry{
	{0x000000, 16}, {0x00005F, 17}, {0x000087, 18}, {0x0000AF, 19}, {0x0000D7, 20}, {0x0000EE, 4},
	{0x0000FF, 21}, {0x005F00, 22}, {0x005F5F, 23}, {0x005F87, 24}, {0x005FAF, 25}, {0x005FD7, 26},
	{0x005FFF, 27}, {0x008700, 28}, {0x00875F, 29}, {0x008787, 30}, {0x0087AF, 31}, {0x0087D7, 32},
	{0x0087FF, 33}, {0x00AF00, 34}, {0x00AF5F, 35}, {0x00AF87, 36}, {0x00AFAF, 37}, {0x00AFD7, 38},
	{0x00AFFF, 39}, {0x00CD00, 2}, {0x00CDCD, 6}, {0x00D700, 40}, {0x00D75F, 41}, {0x00D787, 42},
	{0x00D7AF, 43}, {0x00D7D7, 44}, {0x00D7FF, 45}, {0x00FF00, 46}, {0x00FF5F, 47}, {0x00FF87, 48},
	{0x00FFAF, 49}, {0x00FFD7, 50}, {0x00FFFF, 51}, {0x080808, 232}, {0x121212, 233}, {0x1C1C1C, 234},
	{0x262626, 235}, {0x303030, 236}, {0x3A3A3A, 237}, {0x444444, 238}, {0x4E4E4E, 239}, {0x585858, 240},
	{0x5C5CFF, 12}, {0x5F0000, 52}, {0x5F005F, 53}, {0x5F0087, 54}, {0x5F00AF, 55}, {0x5F00D7, 56},
	{0x5F00FF, 57}, {0x5F5F00, 58}, {0x5F5F5F, 59}, {0x5F5F87, 60}, {0x5F5FAF, 61}, {0x5F5FD7, 62},
	{0x5F5FFF, 63}, {0x5F8700, 64}, {0x5F875F, 65}, {0x5F8787, 66}, {0x5F87AF, 67}, {0x5F87D7, 68},
	{0x5F87FF, 69}, {0x5FAF00, 70}, {0x5FAF5F, 71}, {0x5FAF87, 72}, {0x5FAFAF, 73}, {0x5FAFD7, 74},
	{0x5FAFFF, 75}, {0x5FD700, 76}, {0x5FD75F, 77}, {0x5FD787, 78}, {0x5FD7AF, 79}, {0x5FD7D7, 80},
	{0x5FD7FF, 81}, {0x5FFF00, 82}, {0x5FFF5F, 83}, {0x5FFF87, 84}, {0x5FFFAF, 85}, {0x5FFFD7, 86},
	{0x5FFFFF, 87}, {0x626262, 241}, {0x6C6C6C, 242}, {0x767676, 243}, {0x7F7F7F, 8}, {0x808080, 244},
	{0x870000, 88}, {0x87005F, 89}, {0x870087, 90}, {0x8700AF, 91}, {0x8700D7, 92}, {0x8700FF, 93},
	{0x875F00, 94}, {0x875F5F, 95}, {0x875F87, 96}, {0x875FAF, 97}, {0x875FD7, 98}, {0x875FFF, 99},
	{0x878700, 100}, {0x87875F, 101}, {0x878787, 102}, {0x8787AF, 103}, {0x8787D7, 104}, {0x8787FF, 105},
	{0x87AF00, 106}, {0x87AF5F, 107}, {0x87AF87, 108}, {0x87AFAF, 109}, {0x87AFD7, 110}, {0x87AFFF, 111},
	{0x87D700, 112}, {0x87D75F, 113}, {0x87D787, 114}, {0x87D7AF, 115}, {0x87D7D7, 116}, {0x87D7FF, 117},
	{0x87FF00, 118}, {0x87FF5F, 119}, {0x87FF87, 120}, {0x87FFAF, 121}, {0x87FFD7, 122}, {0x87FFFF, 123},
	{0x8A8A8A, 245}, {0x949494, 246}, {0x9E9E9E, 247}, {0xA8A8A8, 248}, {0xAF0000, 124}, {0xAF005F, 125},
	{0xAF0087, 126}, {0xAF00AF, 127}, {0xAF00D7, 128}, {0xAF00FF, 129}, {0xAF5F00, 130}, {0xAF5F5F, 131},
	{0xAF5F87, 132}, {0xAF5FAF, 133}, {0xAF5FD7, 134}, {0xAF5FFF, 135}, {0xAF8700, 136}, {0xAF875F, 137},
	{0xAF8787, 138}, {0xAF87AF, 139}, {0xAF87D7, 140}, {0xAF87FF, 141}, {0xAFAF00, 142}, {0xAFAF5F, 143},
	{0xAFAF87, 144}, {0xAFAFAF, 145}, {0xAFAFD7, 146}, {0xAFAFFF, 147}, {0xAFD700, 148}, {0xAFD75F, 149},
	{0xAFD787, 150}, {0xAFD7AF, 151}, {0xAFD7D7, 152}, {0xAFD7FF, 153}, {0xAFFF00, 154}, {0xAFFF5F, 155},
	{0xAFFF87, 156}, {0xAFFFAF, 157}, {0xAFFFD7, 158}, {0xAFFFFF, 159}, {0xB2B2B2, 249}, {0xBCBCBC, 250},
	{0xC6C6C6, 251}, {0xCD0000, 1}, {0xCD00CD, 5}, {0xCDCD00, 3}, {0xD0D0D0, 252}, {0xD70000, 160},
	{0xD7005F, 161}, {0xD70087, 162}, {0xD700AF, 163}, {0xD700D7, 164}, {0xD700FF, 165}, {0xD75F00, 166},
	{0xD75F5F, 167}, {0xD75F87, 168}, {0xD75FAF, 169}, {0xD75FD7, 170}, {0xD75FFF, 171}, {0xD78700, 172},
	{0xD7875F, 173}, {0xD78787, 174}, {0xD787AF, 175}, {0xD787D7, 176}, {0xD787FF, 177}, {0xD7AF00, 178},
	{0xD7AF5F, 179}, {0xD7AF87, 180}, {0xD7AFAF, 181}, {0xD7AFD7, 182}, {0xD7AFFF, 183}, {0xD7D700, 184},
	{0xD7D75F, 185}, {0xD7D787, 186}, {0xD7D7AF, 187}, {0xD7D7D7, 188}, {0xD7D7FF, 189}, {0xD7FF00, 190},
	{0xD7FF5F, 191}, {0xD7FF87, 192}, {0xD7FFAF, 193}, {0xD7FFD7, 194}, {0xD7FFFF, 195}, {0xDADADA, 253},
	{0xE4E4E4, 254}, {0xE5E5E5, 7}, {0xEEEEEE, 255}, {0xFF0000, 196}, {0xFF005F, 197}, {0xFF0087, 198},
	{0xFF00AF, 199}, {0xFF00D7, 200}, {0xFF00FF, 201}, {0xFF5F00, 202}, {0xFF5F5F, 203}, {0xFF5F87, 204},
	{0xFF5FAF, 205}, {0xFF5FD7, 206}, {0xFF5FFF, 207}, {0xFF8700, 208}, {0xFF875F, 209}, {0xFF8787, 210},
	{0xFF87AF, 211}, {0xFF87D7, 212}, {0xFF87FF, 213}, {0xFFAF00, 214}, {0xFFAF5F, 215}, {0xFFAF87, 216},
	{0xFFAFAF, 217}, {0xFFAFD7, 218}, {0xFFAFFF, 219}, {0xFFD700, 220}, {0xFFD75F, 221}, {0xFFD787, 222},
	{0xFFD7AF, 223}, {0xFFD7D7, 224}, {0xFFD7FF, 225}, {0xFFFF00, 226}, {0xFFFF5F, 227}, {0xFFFF87, 228},
	{0xFFFFAF, 229}, {0xFFFFD7, 230}, {0xFFFFFF, 231},
}

// exact88 is the 88-color analogue of exact256.
var exact88 = [75]exactEntry{
	{0x000000, 16}, {0x00008B, 17}, {0x0000CD, 18}, {0x0000EE, 4}, {0x0000FF, 19}, {0x008B00, 20},
	{0x008B8B, 21}, {0x008BCD, 22}, {0x008BFF, 23}, {0x00CD00, 24}, {0x00CD8B, 25}, {0x00CDCD, 26},
	{0x00CDFF, 27}, {0x00FF00, 28}, {0x00FF8B, 29}, {0x00FFCD, 30}, {0x00FFFF, 31}, {0x2E2E2E, 80},
	{0x5C5C5C, 81}, {0x5C5CFF, 12}, {0x737373, 82}, {0x7F7F7F, 8}, {0x8B0000, 32}, {0x8B008B, 33},
	{0x8B00CD, 34}, {0x8B00FF, 35}, {0x8B8B00, 36}, {0x8B8B8B, 83}, {0x8B8BCD, 38}, {0x8B8BFF, 39},
	{0x8BCD00, 40}, {0x8BCD8B, 41}, {0x8BCDCD, 42}, {0x8BCDFF, 43}, {0x8BFF00, 44}, {0x8BFF8B, 45},
	{0x8BFFCD, 46}, {0x8BFFFF, 47}, {0xA2A2A2, 84}, {0xB9B9B9, 85}, {0xCD0000, 48}, {0xCD008B, 49},
	{0xCD00CD, 50}, {0xCD00FF, 51}, {0xCD8B00, 52}, {0xCD8B8B, 53}, {0xCD8BCD, 54}, {0xCD8BFF, 55},
	{0xCDCD00, 56}, {0xCDCD8B, 57}, {0xCDCDCD, 58}, {0xCDCDFF, 59}, {0xCDFF00, 60}, {0xCDFF8B, 61},
	{0xCDFFCD, 62}, {0xCDFFFF, 63}, {0xD0D0D0, 86}, {0xE5E5E5, 7}, {0xE7E7E7, 87}, {0xFF0000, 64},
	{0xFF008B, 65}, {0xFF00CD, 66}, {0xFF00FF, 67}, {0xFF8B00, 68}, {0xFF8B8B, 69}, {0xFF8BCD, 70},
	{0xFF8BFF, 71}, {0xFFCD00, 72}, {0xFFCD8B, 73}, {0xFFCDCD, 74}, {0xFFCDFF, 75}, {0xFFFF00, 76},
	{0xFFFF8B, 77}, {0xFFFFCD, 78}, {0xFFFFFF, 79},
}
