package components

const (
	companyAddress = "123 Avenue de la République, 75011 Paris, France"
	contactEmail   = "contact@nutri-flow.me"
	companyPhone   = "+33 (0)1 XX XX XX XX"
)

var TermsOfUse = LegalDocument{
	Path:     "/cgu",
	Title:    "Conditions Générales d'Utilisation",
	Subtitle: "Règles et modalités d'utilisation de NutriFlow",
	Sections: []LegalSection{
		{
			Heading: "Préambule",
			Paragraphs: []string{
				"Les présentes Conditions Générales d'Utilisation (CGU) définissent les modalités et conditions d'utilisation de la plateforme SaaS NutriFlow, éditée par NutriFlow SAS, société par actions simplifiée au capital de 10 000 euros, dont le siège social est situé " + companyAddress + ".",
				"L'utilisation de la plateforme NutriFlow implique l'acceptation pleine et entière des présentes conditions générales d'utilisation.",
			},
		},
		{
			Heading: "1. Définitions",
			Items: []string{
				"Plateforme : La solution SaaS NutriFlow accessible via l'adresse nutri-flow.me",
				"Utilisateur : Toute personne physique ou morale utilisant la Plateforme",
				"Professionnel : Diététicien, nutritionniste ou professionnel de santé autorisé",
				"Patient : Personne bénéficiant des services du Professionnel via la Plateforme",
				"Compte : Espace personnel sécurisé permettant l'accès à la Plateforme",
				"Services : L'ensemble des fonctionnalités proposées par NutriFlow",
			},
		},
		{
			Heading:    "2. Objet",
			Paragraphs: []string{"NutriFlow est une plateforme SaaS destinée aux professionnels de la nutrition offrant :"},
			Items: []string{
				"Génération automatique de plans nutritionnels personnalisés",
				"Gestion de la relation patient",
				"Outils de suivi et d'analyse nutritionnelle",
				"Système de facturation intégré",
				"Portail patient pour le suivi personnalisé",
				"Outils de communication professionnel-patient",
			},
		},
		{
			Heading: "3. Accès et inscription",
			Subsections: []LegalSection{
				{
					Heading: "3.1 Conditions d'accès",
					Paragraphs: []string{
						"L'accès à NutriFlow est réservé aux professionnels de la nutrition (diététiciens, nutritionnistes) disposant des qualifications et autorisations légales requises pour exercer leur profession.",
						"L'Utilisateur doit être majeur et disposer de la capacité juridique pour s'engager contractuellement.",
					},
				},
				{
					Heading: "3.2 Processus d'inscription",
					Paragraphs: []string{
						"L'inscription nécessite de fournir des informations exactes et à jour. NutriFlow se réserve le droit de vérifier ces informations et de refuser toute inscription qui ne respecterait pas les conditions requises.",
					},
					Items: []string{
						"Identité complète",
						"Qualifications professionnelles",
						"Numéro ADELI ou équivalent",
						"Coordonnées professionnelles",
						"Informations de facturation",
					},
				},
			},
		},
		{
			Heading: "4. Obligations de l'Utilisateur",
			Subsections: []LegalSection{
				{
					Heading:    "4.1 Usage conforme",
					Paragraphs: []string{"L'Utilisateur s'engage à :"},
					Items: []string{
						"Utiliser la Plateforme dans le cadre de son activité professionnelle légale",
						"Respecter les règles déontologiques de sa profession",
						"Maintenir la confidentialité de ses identifiants de connexion",
						"Informer immédiatement NutriFlow de toute utilisation non autorisée de son compte",
						"Ne pas utiliser la Plateforme à des fins illégales ou non autorisées",
					},
				},
				{
					Heading:    "4.2 Responsabilité professionnelle",
					Paragraphs: []string{"L'Utilisateur reste entièrement responsable :"},
					Items: []string{
						"De la pertinence des conseils nutritionnels donnés à ses patients",
						"De la validation médicale des plans générés automatiquement",
						"Du respect du secret médical et professionnel",
						"De l'obtention du consentement éclairé de ses patients",
						"De la conformité avec la réglementation applicable à sa profession",
					},
				},
				{
					Heading:    "4.3 Interdictions",
					Paragraphs: []string{"Il est strictement interdit de :"},
					Items: []string{
						"Partager ses identifiants de connexion avec des tiers",
						"Utiliser la Plateforme pour des activités illégales",
						"Tenter de contourner les mesures de sécurité",
						"Extraire ou copier le contenu de la base de données",
						"Utiliser des scripts automatisés pour accéder à la Plateforme",
						"Perturber le fonctionnement normal des Services",
					},
				},
			},
		},
		{
			Heading: "5. Propriété intellectuelle",
			Subsections: []LegalSection{
				{
					Heading:    "5.1 Droits de NutriFlow",
					Paragraphs: []string{"NutriFlow détient tous les droits de propriété intellectuelle sur la Plateforme, notamment :"},
					Items: []string{
						"Le code source et l'architecture logicielle",
						"Les algorithmes d'intelligence artificielle",
						"Les bases de données nutritionnelles",
						"Les marques, logos et éléments graphiques",
						"La documentation et les contenus éditoriaux",
					},
				},
				{
					Heading:    "5.2 Licence d'utilisation",
					Paragraphs: []string{"NutriFlow accorde à l'Utilisateur une licence personnelle, non exclusive, non cessible et révocable d'utilisation de la Plateforme, limitée à la durée du contrat et dans le respect des présentes CGU."},
				},
				{
					Heading:    "5.3 Contenus de l'Utilisateur",
					Paragraphs: []string{"L'Utilisateur conserve la propriété de ses données et contenus. Il accorde toutefois à NutriFlow une licence limitée pour traiter ces données dans le cadre de la fourniture des Services."},
				},
			},
		},
		{
			Heading: "6. Disponibilité et maintenance",
			Items: []string{
				"Objectif de disponibilité : NutriFlow s'engage à maintenir une disponibilité de la Plateforme de 99,5% sur une base mensuelle, hors maintenance programmée.",
				"Maintenance : Des opérations de maintenance peuvent nécessiter une interruption temporaire du service. L'Utilisateur sera informé au moins 48h à l'avance sauf cas d'urgence.",
				"Évolutions : NutriFlow peut faire évoluer la Plateforme. Les modifications majeures seront communiquées au moins 30 jours à l'avance.",
			},
		},
		{
			Heading: "7. Limitations de responsabilité",
			Items: []string{
				"Nature de l'outil : NutriFlow est un outil d'aide à la décision. La responsabilité des conseils nutritionnels et du suivi médical incombe entièrement au professionnel utilisateur.",
				"Limitation de responsabilité : La responsabilité de NutriFlow est limitée aux dommages directs et ne peut excéder le montant des sommes versées au cours des 12 derniers mois.",
				"Exclusions : NutriFlow ne saurait être tenue responsable des dommages indirects, perte de données, manque à gagner, ou conséquences d'une utilisation inappropriée de la Plateforme.",
			},
		},
		{
			Heading: "8. Suspension et résiliation",
			Subsections: []LegalSection{
				{
					Heading:    "8.1 Suspension",
					Paragraphs: []string{"NutriFlow peut suspendre immédiatement l'accès en cas de :"},
					Items: []string{
						"Violation des présentes CGU",
						"Défaut de paiement",
						"Utilisation frauduleuse ou abusive",
						"Risque pour la sécurité de la Plateforme",
					},
				},
				{
					Heading: "8.2 Résiliation",
					Items: []string{
						"Par l'Utilisateur : Résiliation possible à tout moment avec préavis d'un mois, sans pénalité après la période d'engagement minimale.",
						"Par NutriFlow : Résiliation possible pour motif légitime avec préavis de 2 mois, ou immédiatement en cas de violation grave des CGU.",
					},
				},
			},
		},
		{
			Heading: "9. Protection des données",
			Paragraphs: []string{
				"Le traitement des données personnelles est régi par notre Politique de Confidentialité. L'Utilisateur dispose de droits d'accès, rectification, effacement et portabilité de ses données.",
				"En cas de résiliation, les données sont conservées pendant les durées légales puis supprimées, sauf demande expresse de conservation ou obligation légale contraire.",
			},
		},
		{
			Heading:    "10. Force majeure",
			Paragraphs: []string{"NutriFlow ne saurait être tenue responsable de l'inexécution ou des retards d'exécution de ses obligations résultant d'un cas de force majeure tel que défini par la jurisprudence française."},
		},
		{
			Heading: "11. Droit applicable et litiges",
			Paragraphs: []string{
				"Les présentes CGU sont régies par le droit français. En cas de litige, et après recherche d'une solution amiable, les tribunaux de Paris seront seuls compétents.",
				"L'Utilisateur professionnel peut également recourir à la médiation en contactant : mediation@nutriflow.fr",
			},
		},
		{
			Heading:    "12. Modifications des CGU",
			Paragraphs: []string{"NutriFlow se réserve le droit de modifier les présentes CGU. Toute modification sera communiquée par email au moins 30 jours avant son entrée en vigueur. L'absence d'opposition dans ce délai vaut acceptation des nouvelles conditions."},
		},
		{
			Heading:    "13. Contact",
			Paragraphs: []string{"Pour toute question relative aux présentes CGU :"},
			Items: []string{
				"Email : " + contactEmail,
				"Adresse : NutriFlow SAS, 123 Avenue de la République, 75011 Paris",
				"Téléphone : " + companyPhone,
			},
		},
	},
}

var TermsOfSale = LegalDocument{
	Path:     "/cgv",
	Title:    "Conditions Générales de Vente",
	Subtitle: "Modalités commerciales et d'abonnement à NutriFlow",
	Sections: []LegalSection{
		{
			Heading: "Préambule",
			Paragraphs: []string{
				"Les présentes Conditions Générales de Vente (CGV) régissent les relations commerciales entre NutriFlow SAS, société par actions simplifiée au capital de 10 000 euros, dont le siège social est situé " + companyAddress + ", et ses clients professionnels.",
				"Toute commande implique l'acceptation sans réserve des présentes CGV qui prévalent sur toute autre condition proposée par le client.",
			},
		},
		{
			Heading:    "1. Services proposés",
			Paragraphs: []string{"NutriFlow propose un service SaaS (Software as a Service) destiné aux professionnels de la nutrition comprenant :"},
			Items: []string{
				"Plateforme de gestion de cabinet diététique",
				"Génération automatique de plans nutritionnels par IA",
				"Gestion de la relation patient et suivi personnalisé",
				"Système de facturation et de paiement intégré",
				"Portail patient sécurisé",
				"Outils d'analyse et de reporting",
				"Support technique et accompagnement",
			},
		},
		{
			Heading: "2. Offres et tarification",
			Subsections: []LegalSection{
				{
					Heading: "2.1 Formules d'abonnement",
					Items: []string{
						"Formule Essentiel : 29€ HT/mois. Jusqu'à 50 patients actifs, génération de plans IA illimitée, facturation de base, support email.",
						"Formule Professionnel : 49€ HT/mois. Jusqu'à 150 patients actifs, toutes fonctionnalités incluses, facturation avancée et paiements en ligne, support prioritaire, intégrations tierces.",
						"Formule Cabinet : 99€ HT/mois. Patients illimités, multi-utilisateurs (jusqu'à 5 praticiens), fonctionnalités avancées d'analyse, support téléphonique dédié, formation personnalisée.",
					},
				},
				{
					Heading:    "2.2 Période d'essai",
					Paragraphs: []string{"Une période d'essai gratuite de 14 jours est offerte pour toute nouvelle inscription. Aucune carte bancaire n'est requise pendant cette période. L'essai donne accès à toutes les fonctionnalités de la formule Professionnel."},
				},
				{
					Heading: "2.3 Engagement et facturation",
					Items: []string{
						"Sans engagement : Résiliation possible à tout moment avec effet au terme de la période de facturation en cours.",
						"Avec engagement 12 mois : Réduction de 15% sur les tarifs annuels. Résiliation anticipée possible moyennant le paiement des mois restants.",
						"Facturation : Mensuelle ou annuelle selon l'option choisie. Prélèvement automatique en début de période.",
					},
				},
			},
		},
		{
			Heading: "3. Commande et souscription",
			Subsections: []LegalSection{
				{
					Heading:    "3.1 Processus de souscription",
					Paragraphs: []string{"La souscription s'effectue en ligne via notre site web :"},
					Items: []string{
						"Création du compte professionnel",
						"Vérification des qualifications professionnelles",
						"Choix de la formule d'abonnement",
						"Saisie des informations de paiement",
						"Validation de la commande",
					},
				},
				{
					Heading:    "3.2 Validation de la commande",
					Paragraphs: []string{"La commande n'est définitive qu'après validation du paiement et vérification des qualifications professionnelles. Un email de confirmation est envoyé avec les détails de l'abonnement et les conditions d'accès."},
				},
			},
		},
		{
			Heading: "4. Modalités de paiement",
			Subsections: []LegalSection{
				{
					Heading: "4.1 Moyens de paiement acceptés",
					Items: []string{
						"Carte bancaire (Visa, Mastercard, American Express)",
						"Prélèvement SEPA (pour les abonnements récurrents)",
						"Virement bancaire (sur demande pour les abonnements annuels)",
					},
				},
				{
					Heading:    "4.2 Sécurisation des paiements",
					Paragraphs: []string{"Les paiements sont sécurisés par notre partenaire Stripe, certifié PCI DSS niveau 1. Aucune donnée bancaire n'est stockée sur nos serveurs."},
				},
				{
					Heading:    "4.3 Facturation automatique",
					Paragraphs: []string{"Pour les abonnements récurrents, le renouvellement s'effectue automatiquement à échéance. Le client est informé par email 7 jours avant chaque prélèvement."},
				},
				{
					Heading:    "4.4 Défaut de paiement",
					Paragraphs: []string{"En cas d'échec de paiement, l'accès au service est suspendu après un délai de grâce de 7 jours. Des frais de relance de 15€ HT peuvent être appliqués. La résiliation intervient automatiquement après 30 jours de retard de paiement."},
				},
			},
		},
		{
			Heading: "5. Livraison et activation du service",
			Items: []string{
				"Délai d'activation : Le service est activé immédiatement après validation du paiement et vérification des qualifications professionnelles (sous 24h ouvrées maximum).",
				"Accès au service : Les identifiants de connexion sont communiqués par email sécurisé. Un accompagnement à la prise en main est proposé selon la formule souscrite.",
				"Formation : Une formation en ligne est incluse. Des sessions de formation personnalisées peuvent être proposées moyennant supplément.",
			},
		},
		{
			Heading: "6. Droit de rétractation",
			Paragraphs: []string{
				"Conformément à l'article L221-28 du Code de la consommation, le droit de rétractation ne s'applique pas aux contrats de fourniture de services pleinement exécutés avant la fin du délai de rétractation.",
				"Toutefois, pour les professionnels libéraux, une politique de satisfaction garantie est appliquée : remboursement intégral possible dans les 30 premiers jours en cas d'insatisfaction justifiée.",
			},
		},
		{
			Heading: "7. Politique de remboursement",
			Subsections: []LegalSection{
				{
					Heading: "7.1 Remboursement standard",
					Items: []string{
						"Période d'essai : Aucun frais pendant les 14 premiers jours. Résiliation possible sans frais jusqu'à la fin de cette période.",
						"Satisfaction garantie : Remboursement possible dans les 30 premiers jours suivant la souscription si le service ne répond pas aux attentes (hors utilisation abusive).",
					},
				},
				{
					Heading: "7.2 Cas particuliers",
					Items: []string{
						"Défaillance technique : Remboursement au prorata en cas d'indisponibilité prolongée du service (>48h consécutives).",
						"Résiliation anticipée : Pas de remboursement pour les périodes déjà facturées, sauf cas de force majeure ou défaillance de notre part.",
					},
				},
				{
					Heading:    "7.3 Modalités de remboursement",
					Paragraphs: []string{"Les remboursements s'effectuent sur le moyen de paiement utilisé pour la transaction initiale, dans un délai de 14 jours ouvrés après acceptation de la demande."},
				},
			},
		},
		{
			Heading: "8. Résiliation",
			Subsections: []LegalSection{
				{
					Heading: "8.1 Résiliation par le client",
					Items: []string{
						"Sans engagement : Résiliation possible à tout moment depuis l'espace client, avec effet au terme de la période de facturation en cours.",
						"Avec engagement : Résiliation anticipée moyennant le paiement des mois restants ou selon les conditions négociées contractuellement.",
					},
				},
				{
					Heading:    "8.2 Résiliation par NutriFlow",
					Paragraphs: []string{"NutriFlow peut résilier l'abonnement dans les cas suivants :"},
					Items: []string{
						"Non-paiement persistant (après 30 jours de retard)",
						"Violation des conditions d'utilisation",
						"Usage frauduleux ou abusif du service",
						"Perte des qualifications professionnelles requises",
					},
				},
				{
					Heading: "8.3 Effets de la résiliation",
					Paragraphs: []string{
						"À la résiliation, l'accès au service cesse immédiatement. Les données sont conservées 30 jours pour permettre une éventuelle réactivation, puis supprimées définitivement sauf obligations légales contraires.",
						"Le client peut demander l'export de ses données pendant cette période de 30 jours.",
					},
				},
			},
		},
		{
			Heading: "9. Support et garanties",
			Subsections: []LegalSection{
				{
					Heading: "9.1 Support technique",
					Items: []string{
						"Email : Support@nutriflow.fr (réponse sous 24h ouvrées)",
						"Chat en ligne : Disponible aux heures ouvrables",
						"Téléphone : Pour les formules Professionnel et Cabinet",
						"Base de connaissances : Accessible 24h/24",
					},
				},
				{
					Heading: "9.2 Garanties de service",
					Items: []string{
						"Disponibilité : 99,5% de temps de fonctionnement mensuel garanti",
						"Sécurité : Chiffrement des données, sauvegardes quotidiennes, conformité RGPD garantie.",
						"Performance : Temps de réponse moyen < 2 secondes pour les requêtes standard.",
					},
				},
				{
					Heading:    "9.3 Limitations de garantie",
					Paragraphs: []string{"La garantie ne couvre pas les dysfonctionnements dus à une utilisation non conforme, une modification du service par le client, ou des causes externes (force majeure, problèmes de connectivité internet, etc.)."},
				},
			},
		},
		{
			Heading: "10. Modifications tarifaires",
			Paragraphs: []string{
				"NutriFlow se réserve le droit de modifier ses tarifs avec un préavis de 60 jours minimum. Pour les abonnements en cours, les nouveaux tarifs s'appliquent au prochain renouvellement.",
				"En cas d'augmentation supérieure à 10%, le client peut résilier son abonnement sans frais dans les 30 jours suivant la notification.",
			},
		},
		{
			Heading: "11. Réclamations et médiation",
			Items: []string{
				"Service client : " + contactEmail + " ou +33 (0)7 81 69 86 37",
				"Médiation : En cas de litige persistant, recours possible à la médiation via la plateforme gouvernementale : https://www.mediation-conso.fr",
				"Médiateur de la consommation : DEVIGNY MEDIATION",
			},
		},
		{
			Heading: "12. Dispositions générales",
			Items: []string{
				"Droit applicable : Les présentes CGV sont régies par le droit français.",
				"Juridiction : En cas de litige, les tribunaux de Paris sont seuls compétents.",
				"Nullité partielle : Si une clause des présentes CGV était déclarée nulle, les autres dispositions resteraient en vigueur.",
				"Modifications : Les présentes CGV peuvent être modifiées avec un préavis de 30 jours minimum.",
			},
		},
		{
			Heading: "13. Contact",
			Items: []string{
				"NutriFlow SAS",
				companyAddress,
				"Email : " + contactEmail,
				"Téléphone : " + companyPhone,
				"SIRET : En cours d'attribution",
				"TVA : En cours d'attribution",
			},
		},
	},
}

var PrivacyPolicy = LegalDocument{
	Path:     "/politique-confidentialite",
	Title:    "Politique de confidentialité",
	Subtitle: "Comment nous protégeons et utilisons vos données personnelles",
	Sections: []LegalSection{
		{
			Heading: "1. Introduction",
			Paragraphs: []string{
				`NutriFlow SAS (ci-après "nous", "notre" ou "NutriFlow") s'engage à protéger la confidentialité de vos données personnelles. Cette politique de confidentialité explique comment nous collectons, utilisons, stockons et protégeons vos informations personnelles lorsque vous utilisez notre plateforme SaaS.`,
				"Nous respectons le Règlement Général sur la Protection des Données (RGPD) et la loi française Informatique et Libertés.",
			},
		},
		{
			Heading: "2. Données personnelles collectées",
			Subsections: []LegalSection{
				{
					Heading: "2.1 Données d'inscription et de compte",
					Items: []string{
						"Nom et prénom",
						"Adresse email",
						"Numéro de téléphone",
						"Profession (diététicien/nutritionniste)",
						"Numéro ADELI",
						"Adresse professionnelle",
						"Informations de facturation",
					},
				},
				{
					Heading: "2.2 Données d'utilisation",
					Items: []string{
						"Journaux de connexion (adresse IP, navigateur, système d'exploitation)",
						"Pages visitées et fonctionnalités utilisées",
						"Durée des sessions",
						"Préférences d'utilisation",
					},
				},
				{
					Heading: "2.3 Données de patients (pour les professionnels)",
					Items: []string{
						"Informations démographiques des patients",
						"Données nutritionnelles et de santé",
						"Plans alimentaires et recommandations",
						"Historique des consultations",
						"Notes et observations professionnelles",
					},
				},
			},
		},
		{
			Heading: "3. Finalités du traitement",
			Subsections: []LegalSection{
				{
					Heading: "3.1 Fourniture du service",
					Items: []string{
						"Création et gestion de votre compte professionnel",
						"Génération automatique de plans nutritionnels",
						"Gestion de la relation avec vos patients",
						"Facturation et paiements",
					},
				},
				{
					Heading: "3.2 Amélioration du service",
					Items: []string{
						"Analyse des performances et de l'utilisation",
						"Développement de nouvelles fonctionnalités",
						"Support technique et assistance",
					},
				},
				{
					Heading: "3.3 Communication",
					Items: []string{
						"Envoi d'informations sur le service",
						"Notifications importantes",
						"Support client",
					},
				},
			},
		},
		{
			Heading: "4. Base légale du traitement",
			Items: []string{
				"Exécution du contrat : Le traitement de vos données est nécessaire pour l'exécution de notre contrat de service et la fourniture de notre plateforme.",
				"Intérêt légitime : L'amélioration de nos services, la sécurité de la plateforme et l'analyse des performances constituent nos intérêts légitimes.",
				"Consentement : Pour certaines communications marketing (avec possibilité de retrait).",
				"Obligation légale : Conservation des données de facturation conformément aux obligations comptables et fiscales.",
			},
		},
		{
			Heading:    "5. Partage des données",
			Paragraphs: []string{"Nous ne vendons jamais vos données personnelles. Nous pouvons partager vos données uniquement dans les cas suivants :"},
			Items: []string{
				"Prestataires de services : Hébergement, paiement, support technique (sous contrat de confidentialité)",
				"Obligations légales : Si requis par la loi ou une autorité compétente",
				"Protection des droits : Pour protéger nos droits, notre sécurité ou celle d'autrui",
			},
		},
		{
			Heading: "6. Durée de conservation",
			Items: []string{
				"Données de compte : Pendant la durée du contrat + 3 ans après résiliation",
				"Données de facturation : 10 ans (obligation légale)",
				"Données de patients : Selon la réglementation professionnelle applicable",
				"Journaux de connexion : 12 mois maximum",
				"Données marketing : Jusqu'au retrait du consentement + 3 ans",
			},
		},
		{
			Heading:    "7. Sécurité des données",
			Paragraphs: []string{"Nous mettons en œuvre des mesures techniques et organisationnelles appropriées :"},
			Items: []string{
				"Chiffrement des données en transit et au repos (SSL/TLS, AES-256)",
				"Authentification forte et gestion des accès",
				"Surveillance continue et détection des intrusions",
				"Sauvegardes automatiques et régulières",
				"Formation du personnel à la sécurité des données",
				"Audits de sécurité réguliers",
			},
		},
		{
			Heading: "8. Vos droits",
			Paragraphs: []string{
				"Conformément au RGPD, vous disposez des droits suivants :",
				"Pour exercer ces droits, contactez-nous à : " + contactEmail + " ou via votre espace personnel.",
			},
			Items: []string{
				"Droit d'accès : Obtenir une copie de vos données personnelles",
				"Droit de rectification : Corriger des données inexactes ou incomplètes",
				"Droit d'effacement : Demander la suppression de vos données",
				"Droit de limitation : Limiter le traitement de vos données",
				"Droit de portabilité : Récupérer vos données dans un format structuré",
				"Droit d'opposition : Vous opposer au traitement de vos données",
				"Droit de retrait du consentement : Retirer votre consentement à tout moment",
			},
		},
		{
			Heading: "9. Cookies et technologies similaires",
			Paragraphs: []string{
				"Nous utilisons des cookies pour :",
				"Vous pouvez gérer vos préférences de cookies dans les paramètres de votre navigateur ou via notre centre de préférences accessible dans votre compte.",
			},
			Items: []string{
				"Cookies essentiels : Fonctionnement de la plateforme et sécurité",
				"Cookies de performance : Analyse d'utilisation et amélioration du service",
				"Cookies de préférences : Mémorisation de vos choix et paramètres",
			},
		},
		{
			Heading:    "10. Transferts internationaux",
			Paragraphs: []string{"Vos données sont principalement stockées au sein de l'Union Européenne. En cas de transfert vers un pays tiers, nous nous assurons d'un niveau de protection adéquat par :"},
			Items: []string{
				"Décision d'adéquation de la Commission européenne",
				"Clauses contractuelles types approuvées par la Commission",
				"Mécanismes de certification reconnus",
			},
		},
		{
			Heading: "11. Contact et réclamations",
			Subsections: []LegalSection{
				{
					Heading: "Délégué à la Protection des Données (DPO)",
					Items: []string{
						"Email : dpo@nutriflow.fr",
						"Adresse : NutriFlow SAS - DPO, 123 Avenue de la République, 75011 Paris",
					},
				},
				{
					Heading: "Autorité de contrôle",
					Paragraphs: []string{
						"En cas de litige, vous pouvez saisir la Commission Nationale de l'Informatique et des Libertés (CNIL) : 3 Place de Fontenoy - TSA 80715 - 75334 PARIS CEDEX 07, www.cnil.fr",
					},
				},
			},
		},
		{
			Heading:    "12. Modifications de cette politique",
			Paragraphs: []string{"Nous pouvons modifier cette politique de confidentialité pour refléter les changements dans nos pratiques ou pour des raisons légales. Toute modification importante sera communiquée par email et via notre plateforme au moins 30 jours avant son entrée en vigueur."},
		},
	},
}

var LegalNotice = LegalDocument{
	Path:     "/mentions-legales",
	Title:    "Mentions légales",
	Subtitle: "Informations légales relatives à NutriFlow",
	Sections: []LegalSection{
		{
			Heading: "1. Éditeur du site",
			Items: []string{
				"Dénomination sociale : NutriFlow SAS",
				"Forme juridique : Société par Actions Simplifiée (SAS)",
				"Capital social : 10 000 euros",
				"SIRET : En cours d'attribution",
				"Code APE : 6201Z (Programmation informatique)",
				"TVA intracommunautaire : En cours d'attribution",
				"Siège social : " + companyAddress,
				"Téléphone : " + companyPhone,
				"Email : " + contactEmail,
				"Directeur de la publication : Danis Cindrak",
			},
		},
		{
			Heading: "2. Hébergement",
			Items: []string{
				"Hébergeur : DigitalOcean, LLC",
				"Adresse : 101 Avenue of the Americas, 10th Floor, New York, NY 10013, USA",
				"Téléphone : +1 (866) 409-1497",
				"Site web : https://www.digitalocean.com",
				"Localisation des serveurs : Union Européenne (Frankfurt, Allemagne)",
			},
		},
		{
			Heading: "3. Propriété intellectuelle",
			Paragraphs: []string{
				"L'ensemble du contenu du site NutriFlow (textes, images, vidéos, logos, icônes, sons, logiciels, etc.) est protégé par les droits de propriété intellectuelle. Ces éléments sont la propriété exclusive de NutriFlow SAS ou de ses partenaires.",
				"Toute reproduction, représentation, modification, publication, adaptation de tout ou partie des éléments du site, quel que soit le moyen ou le procédé utilisé, est interdite, sauf autorisation écrite préalable de NutriFlow SAS.",
				`La marque "NutriFlow" ainsi que les logos et signes distinctifs sont des marques déposées ou en cours de dépôt de NutriFlow SAS. Toute utilisation non autorisée de ces marques est strictement interdite.`,
			},
		},
		{
			Heading: "4. Responsabilité",
			Paragraphs: []string{
				"NutriFlow SAS s'efforce de fournir des informations aussi précises que possible. Toutefois, elle ne pourra être tenue responsable des omissions, des inexactitudes et des carences dans la mise à jour, qu'elles soient de son fait ou du fait des tiers partenaires qui lui fournissent ces informations.",
				"NutriFlow SAS ne saurait être tenue responsable de l'utilisation des informations nutritionnelles fournies par la plateforme. Ces informations sont données à titre indicatif et ne remplacent en aucun cas l'avis d'un professionnel de santé qualifié.",
				"L'utilisateur assume l'entière responsabilité de l'utilisation qu'il fait des informations et contenus présents sur le site NutriFlow.",
			},
		},
		{
			Heading: "5. Protection des données personnelles",
			Paragraphs: []string{
				"Conformément au Règlement Général sur la Protection des Données (RGPD) et à la loi Informatique et Libertés, vous disposez d'un droit d'accès, de rectification, d'effacement et de portabilité de vos données personnelles.",
				"Pour exercer ces droits ou pour toute question relative au traitement de vos données personnelles, vous pouvez nous contacter à l'adresse : " + contactEmail,
				"Pour plus d'informations, consultez notre Politique de confidentialité.",
			},
		},
		{
			Heading: "6. Droit applicable et juridiction",
			Paragraphs: []string{
				"Les présentes mentions légales sont régies par le droit français. En cas de litige, et après recherche d'une solution amiable, les tribunaux français seront seuls compétents.",
				"Pour toute question relative aux présentes mentions légales, vous pouvez nous contacter à l'adresse : " + contactEmail,
			},
		},
		{
			Heading:    "7. Dernière mise à jour",
			Paragraphs: []string{"Les présentes mentions légales ont été mises à jour le " + legalUpdated + "."},
		},
	},
}
