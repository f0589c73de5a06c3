package identity

// Name pools for generated local-parts, drawn from several naming cultures so
// minted addresses do not all look alike.

var firstNames = []string{
	// western
	"john", "jane", "michael", "sarah", "david", "emma", "james", "olivia",
	"robert", "ava", "william", "isabella", "richard", "sophia", "joseph",
	"charlotte", "thomas", "mia", "christopher", "amelia", "charles", "harper",
	"daniel", "evelyn", "matthew", "abigail", "anthony", "emily", "mark",
	"elizabeth", "steven", "avery", "paul", "ella", "andrew", "madison",
	"joshua", "scarlett", "kenneth", "victoria", "kevin", "aria", "brian",
	"grace", "george", "chloe", "timothy", "camila", "jason", "layla",
	"edward", "riley", "ryan", "nora", "jacob", "zoey", "nicholas", "aubrey",
	"eric", "hannah", "jonathan", "lily", "stephen", "addison", "justin",
	"natalie", "scott", "luna", "brandon", "savannah", "benjamin", "leah",
	"samuel", "zoe", "gregory", "hazel", "alexander", "aurora", "patrick",
	"lucy", "jack", "audrey", "dennis", "bella",
	// indian
	"aarav", "aisha", "arjun", "diya", "vivaan", "zara", "aditya", "ananya",
	"vihaan", "kiara", "arnav", "myra", "shaurya", "advait", "krishiv",
	"anaya", "dhruv", "aaradhya", "kabir", "pari", "aarush", "kyra",
	"reyansh", "navya", "krishna", "ishaan",
	// east asian
	"wei", "li", "ming", "xia", "jian", "yue", "tao", "mei", "feng", "hui",
	"yong", "jing", "bin", "yan", "hao", "xin", "lei", "fang", "jun", "lan",
	"kai", "yuki", "hiro", "aki", "ken", "mai", "taro", "saki", "hana",
	"sora", "aoi", "ren", "yui", "kota", "mio", "haru", "sakura", "yuto",
	"rin",
	// middle eastern
	"ahmad", "fatima", "omar", "hassan", "ali", "yusuf", "noor", "ibrahim",
	"amina", "khalil", "mariam", "zain", "tariq", "yasmin", "rashid",
	"nadia", "karim", "leila", "samir", "dalia", "nabil", "rania", "fadi",
	"sara", "waleed", "lina",
	// european
	"lucas", "liam", "noah", "ethan", "mason", "oliver", "elijah", "henry",
	"owen", "jackson", "nathan", "isaac", "dylan", "caleb", "adrian",
	"miles", "leo", "sebastian",
	// african
	"kofi", "ama", "kwame", "abena", "kwesi", "akua", "kweku", "adwoa",
	"kwabena", "afua",
	// latin american
	"santiago", "mateo", "diego", "valentina", "nicolas", "valeria",
	"alejandro", "mariana", "carlos", "gabriela", "javier", "luciana",
	"miguel", "ximena", "jose", "juan", "luis", "fernando", "roberto",
	"ricardo", "eduardo", "manuel",
}

var lastNames = []string{
	// western
	"smith", "johnson", "williams", "brown", "jones", "garcia", "miller",
	"davis", "rodriguez", "martinez", "hernandez", "lopez", "gonzalez",
	"wilson", "anderson", "thomas", "taylor", "moore", "jackson", "martin",
	"lee", "perez", "thompson", "white", "harris", "sanchez", "clark",
	"ramirez", "lewis", "robinson", "walker", "young", "allen", "king",
	"wright", "scott", "torres", "nguyen", "hill", "flores", "green",
	"adams", "nelson", "baker", "hall", "rivera", "campbell", "mitchell",
	"carter", "roberts",
	// indian
	"patel", "singh", "kumar", "sharma", "verma", "gupta", "malhotra",
	"kapoor", "reddy", "chopra", "joshi", "yadav", "kaur", "rajput",
	"chauhan", "mehta", "shah", "tiwari", "bhatt", "desai", "nair", "iyer",
	"menon", "pillai", "krishnan", "raman", "subramanian", "venkatesh",
	// east asian
	"wang", "zhang", "liu", "chen", "yang", "huang", "zhao", "wu", "zhou",
	"sun", "ma", "zhu", "hu", "guo", "lin", "he", "gao", "luo", "zheng",
	"tanaka", "sato", "suzuki", "takahashi", "watanabe", "ito", "yamamoto",
	"nakamura", "kobayashi", "kato", "yoshida", "yamada", "sasaki",
	"yamaguchi", "saito", "matsumoto", "inoue", "kimura", "hayashi",
	"shimizu",
	// european
	"muller", "schmidt", "schneider", "fischer", "weber", "meyer", "wagner",
	"becker", "schulz", "hoffmann", "koch", "bauer", "richter", "klein",
	"wolf", "neumann", "schwarz", "zimmermann", "braun", "kruger", "lange",
	"werner", "krause", "meier", "lehmann", "maier", "kohler", "herrmann",
	"konig", "walter", "mayer", "huber",
	// african
	"diallo", "traore", "keita", "cisse", "konate", "sow", "ba", "diop",
	"fall", "ndiaye", "gueye", "mbaye", "sall", "thiam", "camara", "toure",
	"kone", "ouattara", "zulu", "ndlovu", "mthembu", "dlamini", "nkosi",
	"mkhize",
	// latin american
	"morales", "cruz", "ortiz", "reyes", "moreno", "jimenez", "diaz",
	"romero", "alvarez", "mendoza", "castillo", "vargas", "ramos", "ruiz",
	"castro", "molina", "herrera", "medina",
}

var adjectives = []string{
	"happy", "clever", "brave", "wise", "kind", "smart", "quick", "bright",
	"calm", "cool", "friendly", "gentle", "honest", "lucky", "nice", "quiet",
	"shy", "sweet", "warm", "young", "bold", "creative", "energetic",
	"funny", "generous", "helpful", "imaginative", "joyful", "loving",
	"patient", "peaceful", "polite", "powerful", "proud", "respectful",
	"responsible", "sincere", "thoughtful", "trustworthy", "understanding",
	"adventurous", "ambitious", "confident", "courageous", "determined",
	"enthusiastic", "faithful", "graceful", "humorous", "independent",
	"intelligent", "loyal", "modest", "optimistic", "passionate", "reliable",
	"sensible", "sociable", "talented", "witty",
}
