package content

// Default returns the built-in portfolio.
func Default() Profile {
	return Profile{
		Name:     "Rishav Sinha",
		Initials: "RS",
		Title:    "Welcome to My Portfolio",
		Tagline:  "Full-Stack Developer & UI/UX Enthusiast creating beautiful digital experiences",
		About: "Hi, I'm **Rishav Sinha**, B.Tech Graduate in Computer Science from Maharashtra Institute of Technology, Pune. " +
			"I am a **passionate Full-Stack Developer** with a keen interest in building scalable web applications and creating " +
			"*intuitive user interfaces*. With a strong foundation in both frontend and backend technologies, I enjoy tackling " +
			"complex problems and delivering high-quality solutions.\n\n" +
			"Currently, I am placed as a **Full Stack Developer** at **Vaaan Infra Pvt.Ltd**, mainly using React JS, Angular, " +
			"Django, C# and SQL Server. I thrive in collaborative environments and love learning new technologies to stay ahead " +
			"in the ever-evolving tech landscape. In my free time, I enjoy exploring new frameworks and enhancing my skills " +
			"through continuous learning.",
		Highlights: []string{"Vaaan Infra Pvt.Ltd", "Full Stack Developer", "Continuous Learner"},
		Projects: []Project{
			{
				Title: "Video Management System",
				Description: "A full-stack application for streaming live feed through EyeNor Cameras with features like user " +
					"authentication, live stream cameras with replays, logging user activities and many more features.",
				Tech: []string{"React", "Node.js", "Django", "Tailwind CSS", "db browser Sqlite"},
			},
			{
				Title: "Remote Condition And Asset Monitoring Management System",
				Description: "A collaborative condition and asset monitoring management full stack application with real-time " +
					"updates of roads, highways, and bridges with features like user authentication, real-time updates, " +
					"displaying roads and asset management.",
				Tech: []string{"React", "Django", "SQL"},
			},
			{
				Title: "Integrated Public Transport Management System",
				Description: "A responsive full stack web application for managing public transport systems, including bus " +
					"schedules, routes, and ticketing.",
				Tech: []string{"Angular", "C#", "Highcharts", "SQL Server"},
			},
		},
		Skills: []SkillGroup{
			{Title: "Frontend Development", Items: []string{"React Js", "TypeScript", "Angular"}},
			{Title: "Backend Development", Items: []string{"Node.js", "Python", "SQL"}},
			{Title: "Design & Tools", Items: []string{"Figma", "Git", "Docker"}},
			{Title: "Cloud & DevOps", Items: []string{"AWS", "Netlify", "Vercel"}},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Technology in Computer Science",
				Institution: "Maharashtra Institute Of Technology (MIT) Pune",
				Period:      "2019 - 2023",
				Description: "Focused on software engineering, data structures, algorithms, AWS Cloud Computing and web " +
					"development. Graduated with CGPA: 8.63/10.",
				Topics: []string{"Data Structures", "Algorithms", "Web Development", "Database Systems", "AWS Cloud Computing", "Android Development"},
			},
		},
		Experience: []Job{
			{
				Title:    "Full Stack Developer",
				Company:  "VaaaN Infra Pvt.Ltd",
				Period:   "June 2024 - Present",
				Location: "Faridabad, Haryana",
				Points: []string{
					"Developed and maintained 3+ web applications using React, Django, Angular, MySql, C#",
					"Collaborated with cross-functional teams to deliver projects 20% ahead of schedule",
					"Implemented responsive design principles resulting in 40% improvement in mobile user experience",
					"Optimized database queries leading to 30% faster page load times",
				},
				Tags: []string{"React", "Angular", "Django", "MySql"},
			},
			{
				Title:    "Full Stack Developer",
				Company:  "Worqhat (Winlysis Pvt.Ltd)",
				Period:   "Dec 2022 - May 2023",
				Location: "Pune, Maharashtra",
				Points: []string{
					"Worked on building the Drag and Drop Component Based Editor that can be used to build all kinds of dynamic Applications.",
					"Built multiple Frontend Components for Complex Applications.",
					"Worked on the Tech Stack of EJS, CSS, Javascript, NodeJS, Express, TailwindCSS and Firebase Firestore as a NoSQL database.",
				},
				Tags: []string{"EJS", "CSS", "NodeJS", "Firebase Firestore"},
			},
			{
				Title:    "Web Development Intern",
				Company:  "UinSports Canadian Sports Startup Company",
				Period:   "May 2020 - Aug 2022",
				Location: "Canada",
				Points: []string{
					"Developed responsive websites using HTML, CSS, and JavaScript",
					"Assisted in maintaining and updating client websites",
					"Implemented Audio And Video merged and compressed using FFMpeg",
					"Developed their websites as per requirements using Python as backend.",
				},
				Tags: []string{"HTML/CSS", "JavaScript", "WordPress", "Git"},
			},
		},
		Certifications: []Certification{
			{
				Title:       "Python Data Structures",
				Issuer:      "University Of Michigan",
				Date:        "17 May 2020",
				Description: "Demonstrates expertise in developing skills using Python in Data Structures.",
				Tags:        []string{"Python"},
			},
			{
				Title:       "Cloud Engineering Track and Data Science & Machine Learning Track",
				Issuer:      "Google Cloud Program 2021 (Google)",
				Date:        "May 2021",
				Description: "Completed Cloud Engineering Track and Data Science & Machine Learning Track in 30 Days of Google Cloud Program 2021",
				Tags:        []string{"Data Science", "Machine Learning"},
			},
			{
				Title:  "Cybersecurity Virtual Internship",
				Issuer: "Paloalto, AICTE Eduskills",
				Date:   "March - May 2022",
				Description: "Completed 10 weeks of Cybersecurity Virtual Internship with Paloalto, AICTE Eduskills, covering " +
					"topics like network security, threat analysis, and incident response.",
				Tags: []string{"Network Security", "Threat Analysis"},
			},
			{
				Title:  "Oracle Cloud Infrastructure Foundations",
				Issuer: "Oracle",
				Date:   "5th March 2022",
				Description: "Certification covering foundational knowledge of Oracle Cloud Infrastructure, including core " +
					"services, security, and architecture best practices.",
				Tags: []string{"Cloud Infrastructure", "Core Services"},
			},
			{
				Title:  "Machine Learning: Regression",
				Issuer: "University Of Washington",
				Date:   "11 June 2020",
				Description: "Certification demonstrating proficiency in Algorithms, Data Analysis, Mathematics, Human Learning, " +
					"Regression, Applied Machine Learning, Machine Learning Algorithms.",
				Tags: []string{"Data Analysis", "Applied Machine Learning"},
			},
			{
				Title:  "Industry 4.0 And Industrial Internet Of Things",
				Issuer: "NPTEL",
				Date:   "Jul-Oct 2022",
				Description: "Successfully completed the NPTEL course on Industry 4.0 and Industrial Internet of Things, covering " +
					"topics like IoT architecture, protocols, and applications in industry with a consolidated score of 73%.",
				Tags: []string{"IoT architecture", "Protocols"},
			},
		},
		Contact: Contact{
			Message:  "Have a project in mind? I'd love to hear about it and discuss how we can bring your ideas to life.",
			Email:    "rishavsinha57@gmail.com",
			GitHub:   "https://github.com/ribhu27",
			LinkedIn: "https://www.linkedin.com/in/rishav-sinha-717a4320a",
		},
		Footer: "© 2025 Rishav Sinha. Built And Designed By Rishav.",
	}
}
