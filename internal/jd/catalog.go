// Package jd holds the built-in job-description catalog: a fixed, ordered
// set of role labels with sample JD text. Clients may also supply free-form
// custom JD text under the "Custom Input" sentinel.
package jd

// Sentinel role labels understood by the HTTP surface.
const (
	// CustomInput marks a client-supplied job description; it has no
	// catalog text.
	CustomInput = "Custom Input"
	// AllRoles is the listing filter value that disables role filtering.
	AllRoles = "All Roles"
)

// NotFoundMessage is returned for roles outside the catalog.
const NotFoundMessage = "No default JD found for this role."

// defaultRole is the catalog entry served by the jd_default endpoint.
const defaultRole = "Software Engineer"

type entry struct {
	role string
	text string
}

// catalog order is stable; Roles() reports labels in this order.
var catalog = []entry{
	{
		role: "Software Engineer",
		text: "We are seeking a skilled Software Engineer with strong problem-solving abilities and experience in data structures, algorithms, and object-oriented programming. Proficiency in Python, Java, or C++ is required. Experience with web frameworks like Django/Flask or Spring Boot, and database systems such as SQL or NoSQL is a plus. Candidates should be familiar with version control (Git) and agile development methodologies.",
	},
	{
		role: "Frontend Developer",
		text: "Looking for a frontend developer proficient in React.js, HTML5, CSS3, and JavaScript. Experience with state management libraries (Redux, Zustand) and modern build tools (Webpack, Vite) is essential. Familiarity with responsive design principles, cross-browser compatibility, and UI/UX best practices is highly valued. Knowledge of TypeScript and component libraries like Material-UI or Ant Design is a plus.",
	},
	{
		role: "Backend Developer",
		text: "Experience with Node.js, Python, and RESTful APIs. Solid understanding of database design (SQL/NoSQL), authentication/authorization mechanisms, and cloud platforms (AWS, Azure, GCP). Familiarity with microservices architecture, message queues (Kafka, RabbitMQ), and containerization (Docker, Kubernetes) is preferred. Strong debugging and performance optimization skills are required.",
	},
	{
		role: "Data Scientist",
		text: "Build ML models and extract insights from complex datasets. Requires strong statistical knowledge, proficiency in Python/R, and experience with libraries like Pandas, NumPy, Scikit-learn, and TensorFlow/PyTorch. Experience with data visualization tools (Matplotlib, Seaborn, Tableau) and big data technologies (Spark, Hadoop) is a plus. Strong communication skills for presenting findings are essential.",
	},
	{
		role: "Machine Learning Engineer",
		text: "Productionize models using TensorFlow/PyTorch. Design, develop, and deploy scalable ML systems. Strong programming skills in Python, experience with MLOps practices, and cloud platforms (AWS Sagemaker, GCP AI Platform). Knowledge of model optimization, deployment strategies, and monitoring tools is crucial. Familiarity with distributed training and data pipelines is a plus.",
	},
	{
		role: "DevOps Engineer",
		text: "Handle CI/CD pipelines, Docker, Kubernetes, and cloud infrastructure (AWS, Azure, GCP). Experience with automation tools (Ansible, Terraform), monitoring systems (Prometheus, Grafana), and scripting (Bash, Python). Strong understanding of network protocols, security best practices, and system administration. Ability to troubleshoot complex production issues is key.",
	},
	{
		role: "Cybersecurity Analyst",
		text: "Monitor threats, configure firewalls, ensure security policies. Experience with SIEM tools, vulnerability assessments, penetration testing, and incident response. Knowledge of network security, application security, and data privacy regulations (GDPR, HIPAA). Certifications like CompTIA Security+, CEH, or CISSP are highly desirable.",
	},
	{
		role: "UI/UX Designer",
		text: "Skilled in Figma, Adobe XD, and user-first design principles. Create wireframes, prototypes, user flows, and high-fidelity mockups. Strong understanding of usability, accessibility, and responsive design. Experience with user research, A/B testing, and design systems. A portfolio demonstrating strong visual design and problem-solving skills is required.",
	},
	{
		role: "Cloud Architect",
		text: "Design scalable systems on AWS/Azure/GCP. Expertise in cloud services (compute, storage, networking, databases), migration strategies, and cost optimization. Strong understanding of security best practices in the cloud, disaster recovery, and high availability. Certifications (AWS Certified Solutions Architect, Azure Solutions Architect Expert) are a significant advantage.",
	},
	{
		role: "Mobile App Developer",
		text: "Flutter or React Native with iOS/Android deployment. Strong proficiency in Dart/JavaScript/TypeScript. Experience with mobile UI/UX best practices, API integration, and push notifications. Familiarity with mobile testing frameworks and app store deployment processes. Knowledge of native platform development (Swift/Kotlin) is a plus.",
	},
	{
		role: "AI Researcher",
		text: "Work on NLP, deep learning, generative models. Strong theoretical background in AI/ML, mathematics, and statistics. Proficiency in Python and deep learning frameworks (TensorFlow, PyTorch). Experience with research publications, experimental design, and large-scale data analysis. PhD or equivalent research experience in a relevant field is often required.",
	},
	{
		role: "Full Stack Developer",
		text: "MERN or MEAN stack experience required. Develop both frontend (React/Angular/Vue) and backend (Node.js/Express) components. Strong understanding of database interactions (MongoDB/SQL), RESTful APIs, and deployment processes. Familiarity with cloud platforms and version control. Ability to work across the entire software development lifecycle.",
	},
	{
		role: "System Administrator",
		text: "Manage infrastructure, troubleshoot, maintain servers (Linux/Windows). Experience with virtualization (VMware, Hyper-V), networking, and scripting (Bash, PowerShell). Knowledge of monitoring tools, backup solutions, and security patches. Ability to diagnose and combat security threats.",
	},
	{
		role: "Data Analyst",
		text: "Use SQL, Python, dashboards, and Excel to analyze data and provide actionable insights. Experience with data cleaning, transformation, and visualization. Familiarity with business intelligence tools (Tableau, Power BI) and statistical analysis. Strong communication skills to present findings to non-technical stakeholders.",
	},
	{
		role: "Blockchain Developer",
		text: "Work with Solidity, Ethereum, and smart contracts. Experience with decentralized applications (dApps), Web3.js/Ethers.js, and blockchain development frameworks (Truffle, Hardhat). Understanding of cryptographic principles, consensus mechanisms, and token standards (ERC-20, ERC-721). Familiarity with layer 2 solutions and defi concepts is a plus.",
	},
	{
		role: "QA Engineer",
		text: "Manual & automated testing with Selenium/Cypress. Design and execute test plans, write test cases, and report bugs. Experience with test management tools (Jira, TestRail) and CI/CD integration. Strong attention to detail and ability to identify edge cases. Familiarity with performance and security testing is a plus.",
	},
	{
		role: "Product Manager",
		text: "Coordinate engineering/design, write specs, define roadmap. Strong understanding of market research, user needs, and product lifecycle. Experience with agile methodologies, backlog prioritization, and stakeholder management. Excellent communication and leadership skills to drive product success.",
	},
	{
		role: "Technical Writer",
		text: "Create clear dev and user documentation. Translate complex technical concepts into easy-to-understand language. Experience with documentation tools (Markdown, Sphinx, Confluence) and version control. Strong research skills and attention to detail. Ability to collaborate with engineers and product teams.",
	},
	{
		role: "Game Developer",
		text: "Unity or Unreal Engine, prototype & build games. Strong programming skills in C#/C++. Experience with game design principles, physics engines, and graphics rendering. Familiarity with game development pipelines, asset management, and performance optimization. Ability to work in a team and contribute to all stages of game development.",
	},
	{
		role: "Network Engineer",
		text: "Design, implement, and maintain network infrastructure. Expertise in routing protocols (BGP, OSPF), switching, and firewalls. Experience with network monitoring tools, troubleshooting, and security best practices. Certifications like CCNA, CCNP, or JNCIE are highly desirable. Strong understanding of TCP/IP and network security principles.",
	},
}

// Roles returns the catalog's role labels in their stable order.
func Roles() []string {
	roles := make([]string, len(catalog))
	for i, e := range catalog {
		roles[i] = e.role
	}
	return roles
}

// Default returns the default job-description text.
func Default() string {
	text, _ := lookup(defaultRole)
	return text
}

// Text returns the JD text for a role. CustomInput yields an empty string;
// unknown roles yield NotFoundMessage.
func Text(role string) string {
	if role == CustomInput {
		return ""
	}
	if text, ok := lookup(role); ok {
		return text
	}
	return NotFoundMessage
}

func lookup(role string) (string, bool) {
	for _, e := range catalog {
		if e.role == role {
			return e.text, true
		}
	}
	return "", false
}
