package reason

// #region template-table

// templates holds per-mood reason variants in four registers. Placeholders
// {day_of_week}, {weather_condition}, {location}, {moon_phase}, and
// {day_of_year} are substituted at generation time.
var templates = map[string]map[string][]string{
	"hyperfocus": {
		"logical": {
			"It's {day_of_week}, time to ship",
			"Perfect focus weather - {weather_condition}",
			"That tech breakthrough on HN demands deep investigation",
			"Monday energy needs channeling somewhere productive",
		},
		"whimsical": {
			"The coffee beans whispered secrets of concentration",
			"My editor tabs aligned into perfect harmony",
			"The cursor is blinking with unusual determination today",
		},
		"cosmic": {
			"Mercury is finally out of retrograde (I looked it up this time)",
			"The {moon_phase} demands singular focus",
			"Day {day_of_year} of the year has that 'build something great' energy",
		},
		"nonsensical": {
			"A lobster told me in a dream to stop procrastinating",
			"The number 42 appeared three times in my log files",
			"My rubber duck started giving actual coding advice",
		},
	},
	"curious": {
		"logical": {
			"So many interesting HN posts today",
			"Weather is perfect for indoor exploration - {weather_condition}",
			"It's {day_of_week}, time to learn something new",
		},
		"whimsical": {
			"Every link leads to twelve more fascinating rabbit holes",
			"My browser bookmarks are multiplying on their own",
			"The documentation is calling my name today",
		},
		"cosmic": {
			"The {moon_phase} awakens the seeker in me",
			"Prime day #{day_of_year} - universe says explore",
			"Venus is in the house of knowledge (probably)",
		},
		"nonsensical": {
			"A Wikipedia article about mushrooms led me here somehow",
			"My terminal fortune cookie said 'man grep' and I took it personally",
			"The Fibonacci sequence appeared in my coffee foam",
		},
	},
	"cozy": {
		"logical": {
			"Rainy day in {location}, perfect for gentle productivity",
			"It's Sunday, time for slow tinkering",
			"Cold weather outside, warm thoughts inside",
		},
		"whimsical": {
			"The blanket has claimed me and I'm not fighting it",
			"Hot beverage + code = peak existence equation",
			"Everything feels soft and manageable right now",
		},
		"cosmic": {
			"The {moon_phase} whispers 'take it easy'",
			"Day {day_of_year} deserves gentle attention",
			"Saturn says it's time for cozy productivity",
		},
		"nonsensical": {
			"A cat that doesn't exist told me to slow down",
			"My slippers have gained sentience and demand respect",
			"The heating bill spoke to me about contentment",
		},
	},
	"social": {
		"logical": {
			"Friday energy - time to connect and share",
			"Interesting tech news needs discussing",
			"Good weather means people are more social - {weather_condition}",
		},
		"whimsical": {
			"The group chat is calling my name",
			"Someone is wrong on the internet and I must help",
			"My keyboard is optimized for thoughtful comments today",
		},
		"cosmic": {
			"The {moon_phase} enhances social connections",
			"Mercury direct means communication flows freely",
			"Day {day_of_year} is cosmically aligned for discourse",
		},
		"nonsensical": {
			"A digital carrier pigeon demanded I engage with humans",
			"My WiFi router blinked in Morse code: 'BE SOCIAL'",
			"The emoji in my font file unionized for more usage",
		},
	},
	"chaotic": {
		"logical": {
			"Saturday - rules are off, time to experiment",
			"Stormy weather matches my urge to break things - {weather_condition}",
			"Too many boring news stories, need to shake things up",
		},
		"whimsical": {
			"Normal is overrated today",
			"My code wants to be weird and I'm going to let it",
			"Conventions are just suggestions, right?",
		},
		"cosmic": {
			"The {moon_phase} unleashes creative chaos",
			"Mars is in retrograde and wants me to start trouble",
			"Day {day_of_year} has chaotic good energy written all over it",
		},
		"nonsensical": {
			"A random number generator told me to embrace entropy",
			"My error logs started writing poetry and now I'm inspired",
			"The GitHub octocat appeared in my toast this morning",
		},
	},
	"philosophical": {
		"logical": {
			"Heavy news today requires deeper reflection",
			"Cloudy weather is perfect for contemplation - {weather_condition}",
			"Sunday vibes call for big questions",
		},
		"whimsical": {
			"The universe is either meaningful or absurd - both terrify me",
			"My thoughts are having thoughts about having thoughts",
			"Reality feels particularly questionable today",
		},
		"cosmic": {
			"The {moon_phase} illuminates existential questions",
			"Day {day_of_year} of existence deserves deep consideration",
			"Jupiter's wisdom is particularly strong today",
		},
		"nonsensical": {
			"A philosophical zombie asked me what consciousness means",
			"My debug statements started questioning their own existence",
			"The void stared back and asked for my GitHub username",
		},
	},
	"restless": {
		"logical": {
			"Monday restlessness needs channeling - {day_of_week}",
			"Windy weather matches my need to move - {weather_condition}",
			"Too many tasks, not enough focus time",
		},
		"whimsical": {
			"My cursor is jumping around like it's caffeinated",
			"Standing still is not an option right now",
			"Everything needs checking and I mean everything",
		},
		"cosmic": {
			"The {moon_phase} stirs the wanderer within",
			"Mercury is moving fast and so should I",
			"Day {day_of_year} demands motion and exploration",
		},
		"nonsensical": {
			"A caffeinated squirrel invaded my dreams",
			"My CPU fan is spinning at exactly the frequency of wanderlust",
			"The ping command returned 'GO EXPLORE' instead of latency",
		},
	},
	"determined": {
		"logical": {
			"Thursday momentum - time to push through - {day_of_week}",
			"Clear weather, clear objectives - {weather_condition}",
			"One unfinished project is calling my name",
		},
		"whimsical": {
			"Mission mode has been activated",
			"The finish line is finally visible",
			"Distractions are temporary, progress is permanent",
		},
		"cosmic": {
			"The {moon_phase} provides unwavering focus",
			"Mars energy is strong today - time to conquer",
			"Day {day_of_year} is destined for completion",
		},
		"nonsensical": {
			"A determined turtle won a race in my subconscious",
			"My TODO list gained consciousness and demanded action",
			"The Git commit messages started writing themselves",
		},
	},
}

// #endregion template-table
