package catalog

// DefaultTables returns the production code tables. The data is the
// supermarket code book the SKU scheme was designed around; tenants share
// these tables while sequences and products stay tenant-scoped.
func DefaultTables() Tables {
	return Tables{
		Brands:     defaultBrands(),
		Categories: defaultCategories(),
		Quantities: defaultQuantities(),
	}
}

func defaultCategories() []CategoryEntry {
	return []CategoryEntry{
		{
			CodeMapEntry: CodeMapEntry{Code: "01", Label: "Groceries & Staples"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Noodle"},
				{Code: "2", Label: "Sauce"},
				{Code: "3", Label: "Spices"},
				{Code: "4", Label: "Pulses & Beans"},
				{Code: "5", Label: "Tea"},
				{Code: "6", Label: "Flour"},
				{Code: "7", Label: "Oil"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "02", Label: "Rice"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Basmati"},
				{Code: "2", Label: "Sella Basmati"},
				{Code: "3", Label: "Idli"},
				{Code: "4", Label: "Soona Masoori"},
				{Code: "5", Label: "Brown"},
				{Code: "6", Label: "Glutonious"},
				{Code: "7", Label: "Jasmin"},
				{Code: "8", Label: "Sushi"},
				{Code: "9", Label: "Puffed Rice"},
				{Code: "10", Label: "Rice Flakes"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "03", Label: "Fresh"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Meat"},
				{Code: "2", Label: "Vegetable"},
				{Code: "3", Label: "Fruit"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "04", Label: "Frozen"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Whole Fish"},
				{Code: "2", Label: "Block Fish"},
				{Code: "3", Label: "Vegetable"},
				{Code: "4", Label: "Pastry"},
				{Code: "5", Label: "Meat"},
				{Code: "6", Label: "Dessert"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "05", Label: "Beverages"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Soft drinks"},
				{Code: "2", Label: "Juice"},
				{Code: "3", Label: "Smoothie"},
				{Code: "4", Label: "Ice Tea"},
				{Code: "5", Label: "Bubble Tea"},
				{Code: "6", Label: "Falooda"},
				{Code: "7", Label: "Sparkling"},
				{Code: "8", Label: "Herbal"},
				{Code: "9", Label: "Limonade"},
				{Code: "10", Label: "Aloevera"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "06", Label: "Sweets & Deserts"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Icecream"},
				{Code: "2", Label: "Coconut Desert"},
				{Code: "3", Label: "Handmade"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "07", Label: "Snacks & Munching"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Chips"},
				{Code: "2", Label: "Biscuits"},
				{Code: "3", Label: "Rusk"},
				{Code: "4", Label: "Chanachur"},
			},
		},
		{
			CodeMapEntry: CodeMapEntry{Code: "08", Label: "Non-Food"},
			Subcategories: []CodeMapEntry{
				{Code: "1", Label: "Incense"},
				{Code: "2", Label: "Utensils"},
				{Code: "3", Label: "Kitchen Accessories"},
			},
		},
	}
}

func defaultQuantities() []CodeMapEntry {
	return []CodeMapEntry{
		{Code: "1", Label: "250g/ml"},
		{Code: "2", Label: "500g/ml"},
		{Code: "3", Label: "1000g/ml"},
		{Code: "4", Label: "3000g/ml"},
		{Code: "5", Label: "5000g/ml"},
		{Code: "6", Label: "8000g/ml"},
		{Code: "7", Label: "10000g/ml"},
		{Code: "8", Label: "15000g/ml"},
		{Code: "9", Label: "20000g/ml"},
	}
}

func defaultBrands() []CodeMapEntry {
	return []CodeMapEntry{
		{Code: "001", Label: "A"},
		{Code: "002", Label: "AASHIRVAAD"},
		{Code: "003", Label: "ACECOOK"},
		{Code: "004", Label: "AFROASE"},
		{Code: "005", Label: "AGARBATTI"},
		{Code: "006", Label: "AHMED"},
		{Code: "007", Label: "AKASH"},
		{Code: "008", Label: "ANNAM"},
		{Code: "009", Label: "ANNY"},
		{Code: "010", Label: "AROD-D"},
		{Code: "011", Label: "ASH K"},
		{Code: "012", Label: "ASHOKA"},
		{Code: "013", Label: "ASIAN CHOICE"},
		{Code: "014", Label: "ATOOM"},
		{Code: "015", Label: "AQUAPEARL"},
		{Code: "016", Label: "BAIJIA"},
		{Code: "017", Label: "BAMBOO TREE"},
		{Code: "018", Label: "BICANO"},
		{Code: "019", Label: "BIK"},
		{Code: "020", Label: "BINGGRAE"},
		{Code: "021", Label: "BIBIGO"},
		{Code: "022", Label: "BOMBAY"},
		{Code: "023", Label: "BRITANNIA"},
		{Code: "024", Label: "CARNATION"},
		{Code: "025", Label: "CARABAO"},
		{Code: "026", Label: "CHIU CHOW"},
		{Code: "027", Label: "CHUPA CHUPS"},
		{Code: "028", Label: "COCK"},
		{Code: "029", Label: "COCON"},
		{Code: "030", Label: "COFE"},
		{Code: "031", Label: "CROWN FARM"},
		{Code: "032", Label: "CYPRESSA"},
		{Code: "033", Label: "DAN"},
		{Code: "034", Label: "DABUR"},
		{Code: "035", Label: "DETTOL"},
		{Code: "036", Label: "DOUX"},
		{Code: "037", Label: "EAGLOBE"},
		{Code: "038", Label: "EFP"},
		{Code: "039", Label: "ELEFANT"},
		{Code: "040", Label: "ELEPHANT"},
		{Code: "041", Label: "ENCONA"},
		{Code: "042", Label: "EVERBEST"},
		{Code: "043", Label: "FARMER"},
		{Code: "044", Label: "FOCO"},
		{Code: "045", Label: "GENKI RAMUNE"},
		{Code: "046", Label: "GINGERBON"},
		{Code: "047", Label: "GITS"},
		{Code: "048", Label: "GOGI"},
		{Code: "049", Label: "GOLESTAN"},
		{Code: "050", Label: "GOLD KILI"},
		{Code: "051", Label: "GOLDEN MOUNTAIN"},
		{Code: "052", Label: "GREEN FARM"},
		{Code: "053", Label: "GREEN TABLE"},
		{Code: "054", Label: "HAIDILAO"},
		{Code: "055", Label: "HALDIRAM"},
		{Code: "056", Label: "HAOHAO"},
		{Code: "057", Label: "HEALTHY BOY"},
		{Code: "058", Label: "HEERA"},
		{Code: "059", Label: "HEER"},
		{Code: "060", Label: "HEINZ"},
		{Code: "061", Label: "HEMANI"},
		{Code: "062", Label: "HENG SHUN"},
		{Code: "063", Label: "HERBEX"},
		{Code: "064", Label: "HERITAGE AFRIKA"},
		{Code: "065", Label: "HERR'S"},
		{Code: "066", Label: "HIKARI MISO"},
		{Code: "067", Label: "HUMZA"},
		{Code: "068", Label: "HOT CHIP"},
		{Code: "069", Label: "HORLICKS"},
		{Code: "070", Label: "HYPER MALT"},
		{Code: "071", Label: "IDEAL"},
		{Code: "072", Label: "IFAD"},
		{Code: "073", Label: "INDOMIE"},
		{Code: "074", Label: "INDIA GATE"},
		{Code: "075", Label: "ISPAHANI"},
		{Code: "076", Label: "JAZZA"},
		{Code: "077", Label: "JH FOODS"},
		{Code: "078", Label: "JHFOODS"},
		{Code: "079", Label: "JIA BRAND"},
		{Code: "080", Label: "JIABAO"},
		{Code: "081", Label: "JIADUOBAO"},
		{Code: "082", Label: "JING YI GEN"},
		{Code: "083", Label: "JONGGA"},
		{Code: "084", Label: "KAIJAE"},
		{Code: "085", Label: "KAILO"},
		{Code: "086", Label: "KATO"},
		{Code: "087", Label: "KHANUM"},
		{Code: "088", Label: "KHONG DO"},
		{Code: "089", Label: "KIKKOMAN"},
		{Code: "090", Label: "KIMHO"},
		{Code: "091", Label: "KINGZEST"},
		{Code: "092", Label: "KNORR"},
		{Code: "093", Label: "KOH-KAE"},
		{Code: "094", Label: "KTC"},
		{Code: "095", Label: "KULFI ICE"},
		{Code: "096", Label: "KURKURE"},
		{Code: "097", Label: "LACTASOY"},
		{Code: "098", Label: "LAILA"},
		{Code: "099", Label: "LAKOVO"},
		{Code: "100", Label: "LAO GAN MA"},
		{Code: "101", Label: "LAZIZA"},
		{Code: "102", Label: "LAYS"},
		{Code: "103", Label: "LEXUS"},
		{Code: "104", Label: "LIJJAT"},
		{Code: "105", Label: "LIPTON"},
		{Code: "106", Label: "LITTLE MOONS"},
		{Code: "107", Label: "LKK"},
		{Code: "108", Label: "LONGLIFE"},
		{Code: "109", Label: "MAE KRUA"},
		{Code: "110", Label: "MAE NAPA"},
		{Code: "111", Label: "MAGGI"},
		{Code: "112", Label: "MAN TANG XIAN"},
		{Code: "113", Label: "MAO XIONG"},
		{Code: "114", Label: "MARUKOME"},
		{Code: "115", Label: "MAMA"},
		{Code: "116", Label: "MAMA'S CHOICE"},
		{Code: "117", Label: "MDH"},
		{Code: "118", Label: "MEGA"},
		{Code: "119", Label: "MEGACHEF"},
		{Code: "120", Label: "MEHEK"},
		{Code: "121", Label: "MEIJI H.PANDA"},
		{Code: "122", Label: "MILKIS"},
		{Code: "123", Label: "MILO"},
		{Code: "124", Label: "MINI MELTS"},
		{Code: "125", Label: "ML SQUID"},
		{Code: "126", Label: "MOGUMOGU"},
		{Code: "127", Label: "MP"},
		{Code: "128", Label: "MTR"},
		{Code: "129", Label: "MYM"},
		{Code: "130", Label: "NARCISSUS"},
		{Code: "131", Label: "NATURINDA"},
		{Code: "132", Label: "NESTLÉ"},
		{Code: "133", Label: "NIDO"},
		{Code: "134", Label: "NITTAYA"},
		{Code: "135", Label: "NONGSHIM"},
		{Code: "136", Label: "NOODLE HOUSE"},
		{Code: "137", Label: "OISHI"},
		{Code: "138", Label: "OKF"},
		{Code: "139", Label: "OTAFUKU"},
		{Code: "140", Label: "OVALTINE"},
		{Code: "141", Label: "OYAKATA"},
		{Code: "142", Label: "PATAK"},
		{Code: "143", Label: "PAN"},
		{Code: "144", Label: "PARACHUTE"},
		{Code: "145", Label: "PARLE"},
		{Code: "146", Label: "PG TIPS"},
		{Code: "147", Label: "PCD"},
		{Code: "148", Label: "PERFIT"},
		{Code: "149", Label: "PILLSBURY"},
		{Code: "150", Label: "PLUVERA"},
		{Code: "151", Label: "PRAN"},
		{Code: "152", Label: "PRESIDENT"},
		{Code: "153", Label: "PRB"},
		{Code: "154", Label: "PRIMA"},
		{Code: "155", Label: "PULMUONE"},
		{Code: "156", Label: "QARSHI"},
		{Code: "157", Label: "RAFHAN"},
		{Code: "158", Label: "RAITIP"},
		{Code: "159", Label: "RADHUNI"},
		{Code: "160", Label: "RABBIT"},
		{Code: "161", Label: "REGAL"},
		{Code: "162", Label: "RENUKA"},
		{Code: "163", Label: "RICO"},
		{Code: "164", Label: "ROYAL ORIENT"},
		{Code: "165", Label: "ROYAL THAI"},
		{Code: "166", Label: "ROYAL THAI RICE"},
		{Code: "167", Label: "ROYAL TIGER"},
		{Code: "168", Label: "RUBICON"},
		{Code: "169", Label: "RUCHI"},
		{Code: "170", Label: "SAGIKO"},
		{Code: "171", Label: "SAHIBA"},
		{Code: "172", Label: "SALANTY"},
		{Code: "173", Label: "SAMYANG"},
		{Code: "174", Label: "SANHAN"},
		{Code: "175", Label: "SCHANI"},
		{Code: "176", Label: "SEMPIO"},
		{Code: "177", Label: "SHANA"},
		{Code: "178", Label: "SHAN"},
		{Code: "179", Label: "SHAN WAI"},
		{Code: "180", Label: "SHEZAN"},
		{Code: "181", Label: "SHODESH"},
	}
}
