package service

type regionPoint struct {
	Lat    float64
	Lng    float64
	Region string
}

// Curated exact pincode coordinates. Entries concentrate on Mumbai because
// that is where the delivery corrections apply.
var exactPincodes = map[string]regionPoint{
	"400001": {18.9338, 72.8356, "Fort, South Mumbai"},
	"400004": {18.9543, 72.8184, "Girgaon, South Mumbai"},
	"400005": {18.9067, 72.8147, "Colaba, South Mumbai"},
	"400020": {18.9430, 72.8238, "Marine Lines, South Mumbai"},
	"400050": {19.0544, 72.8402, "Bandra West, Mumbai Western Suburbs"},
	"400053": {19.1364, 72.8296, "Andheri West, Mumbai Western Suburbs"},
	"400056": {19.1076, 72.8370, "Vile Parle West, Mumbai Western Suburbs"},
	"400092": {19.2307, 72.8567, "Borivali West, Mumbai Western Suburbs"},
	"400042": {19.1441, 72.9374, "Bhandup West, Mumbai Eastern Suburbs"},
	"400071": {19.0522, 72.9005, "Chembur, Mumbai Eastern Suburbs"},
	"400077": {19.0863, 72.9093, "Ghatkopar East, Mumbai Eastern Suburbs"},
	"400601": {19.1972, 72.9722, "Thane West, Thane"},
	"400604": {19.1943, 72.9615, "Wagle Estate, Thane"},
	"400614": {19.0237, 73.0407, "CBD Belapur, Navi Mumbai"},
	"400703": {19.0771, 72.9987, "Vashi, Navi Mumbai"},
	"400706": {19.0330, 73.0297, "Nerul, Navi Mumbai"},
	"110001": {28.6315, 77.2167, "Connaught Place, Delhi"},
	"110016": {28.5494, 77.2001, "Hauz Khas, Delhi"},
	"560001": {12.9762, 77.6033, "MG Road, Bengaluru"},
	"560066": {12.9698, 77.7500, "Whitefield, Bengaluru"},
	"600001": {13.0913, 80.2847, "Parrys, Chennai"},
	"700001": {22.5726, 88.3639, "BBD Bagh, Kolkata"},
	"500001": {17.3850, 78.4867, "Abids, Hyderabad"},
	"411001": {18.5158, 73.8790, "Pune Camp, Pune"},
}

// Denser regional table keyed on the first three digits.
var prefix3Pincodes = map[string]regionPoint{
	"400": {19.0760, 72.8777, "Mumbai"},
	"401": {19.6970, 72.7654, "Palghar"},
	"410": {18.8300, 73.2700, "Raigad"},
	"411": {18.5204, 73.8567, "Pune"},
	"110": {28.6139, 77.2090, "Delhi"},
	"122": {28.4595, 77.0266, "Gurugram"},
	"201": {28.6692, 77.4538, "Ghaziabad"},
	"226": {26.8467, 80.9462, "Lucknow"},
	"302": {26.9124, 75.7873, "Jaipur"},
	"380": {23.0225, 72.5714, "Ahmedabad"},
	"395": {21.1702, 72.8311, "Surat"},
	"440": {21.1458, 79.0882, "Nagpur"},
	"500": {17.3850, 78.4867, "Hyderabad"},
	"560": {12.9716, 77.5946, "Bengaluru"},
	"600": {13.0827, 80.2707, "Chennai"},
	"682": {9.9312, 76.2673, "Kochi"},
	"700": {22.5726, 88.3639, "Kolkata"},
	"800": {25.5941, 85.1376, "Patna"},
}

// Coarse state-level table keyed on the first two digits.
var prefix2Pincodes = map[string]regionPoint{
	"11": {28.6139, 77.2090, "Delhi NCR"},
	"12": {29.0588, 76.0856, "Haryana"},
	"13": {29.0588, 76.0856, "Haryana"},
	"14": {31.1471, 75.3412, "Punjab"},
	"20": {26.8467, 80.9462, "Uttar Pradesh"},
	"22": {26.8467, 80.9462, "Uttar Pradesh"},
	"30": {27.0238, 74.2179, "Rajasthan"},
	"38": {22.2587, 71.1924, "Gujarat"},
	"39": {22.2587, 71.1924, "Gujarat"},
	"40": {19.7515, 75.7139, "Maharashtra"},
	"41": {19.7515, 75.7139, "Maharashtra"},
	"42": {19.7515, 75.7139, "Maharashtra"},
	"43": {19.7515, 75.7139, "Maharashtra"},
	"44": {21.1458, 79.0882, "Vidarbha"},
	"45": {22.9734, 78.6569, "Madhya Pradesh"},
	"49": {21.2787, 81.8661, "Chhattisgarh"},
	"50": {18.1124, 79.0193, "Telangana"},
	"52": {15.9129, 79.7400, "Andhra Pradesh"},
	"56": {15.3173, 75.7139, "Karnataka"},
	"57": {15.3173, 75.7139, "Karnataka"},
	"60": {11.1271, 78.6569, "Tamil Nadu"},
	"62": {11.1271, 78.6569, "Tamil Nadu"},
	"67": {10.8505, 76.2711, "Kerala"},
	"68": {10.8505, 76.2711, "Kerala"},
	"70": {22.9868, 87.8550, "West Bengal"},
	"75": {20.9517, 85.0985, "Odisha"},
	"78": {26.2006, 92.9376, "Assam"},
	"80": {25.0961, 85.3131, "Bihar"},
}

// Fallback centroid when nothing matches.
var defaultCentroid = regionPoint{21.7679, 78.8718, "Central India"}
